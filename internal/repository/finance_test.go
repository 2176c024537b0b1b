package repository

import (
	"errors"
	"testing"

	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseCRUD(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	expenses := NewExpenseRepository(db)

	account, err := accounts.Create(view.Account{Name: "Banco", Type: "corriente"})
	require.NoError(t, err)

	created, err := expenses.Create(view.Expense{
		AccountID:   account.ID,
		Category:    "Software",
		Description: "licencias",
		Amount:      120.50,
		Date:        "2026-01-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", created.Date)

	created.Amount = 130
	updated, err := expenses.Update(*created)
	require.NoError(t, err)
	assert.Equal(t, 130.0, updated.Amount)

	require.NoError(t, expenses.Delete(created.ID))
	_, err = expenses.FetchByID(created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestIncomeFetchAllByProject(t *testing.T) {
	db := newTestDB(t)
	incomes := NewIncomeRepository(db)

	_, err := incomes.Create(view.Income{AccountID: 1, ProjectID: 5, Amount: 1000, Category: "Fee"})
	require.NoError(t, err)
	_, err = incomes.Create(view.Income{AccountID: 1, Amount: 500, Category: "Otro"})
	require.NoError(t, err)

	byProject, err := incomes.FetchAll(LedgerFilter{ProjectID: 5})
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, 1000.0, byProject[0].Amount)

	all, err := incomes.FetchAll(LedgerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLeadStatusPipeline(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))

	created, err := repo.Create(view.Lead{Name: "Prospecto", Company: "Empresa X", EstimatedValue: 5000})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", created.Status)

	advanced, err := repo.SetStatus(created.ID, "Contactado")
	require.NoError(t, err)
	assert.Equal(t, "Contactado", advanced.Status)
}

func TestUserIDByName(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	created, err := repo.Create(view.User{Name: "María García", Email: "maria@agencia.com", Active: true})
	require.NoError(t, err)

	id, err := repo.IDByName("María García")
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)

	_, err = repo.IDByName("Nadie")
	assert.True(t, errors.Is(err, ErrNotFound))
}
