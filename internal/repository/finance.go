package repository

import (
	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"gorm.io/gorm"
)

// AccountRepository persists ledger accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to a database handle
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FetchAll returns every account, name ascending
func (r *AccountRepository) FetchAll() ([]view.Account, error) {
	var rows []model.Account
	if err := r.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	accounts := make([]view.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, view.AccountToView(row))
	}
	return accounts, nil
}

// FetchByID returns one account
func (r *AccountRepository) FetchByID(id uint) (*view.Account, error) {
	var row model.Account
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.AccountToView(row)
	return &v, nil
}

// Create writes a new account and returns the persisted row
func (r *AccountRepository) Create(v view.Account) (*view.Account, error) {
	row := view.AccountFromView(v)
	row.ID = 0
	if err := r.db.Create(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(row.ID)
}

// Update saves an existing account
func (r *AccountRepository) Update(v view.Account) (*view.Account, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}
	var existing model.Account
	if err := r.db.First(&existing, v.ID).Error; err != nil {
		return nil, wrap(err)
	}
	row := view.AccountFromView(v)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.Save(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(v.ID)
}

// Delete removes an account row
func (r *AccountRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Account{}, id)
	if result.Error != nil {
		return wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LedgerFilter narrows expense and income listings. Zero values filter
// nothing.
type LedgerFilter struct {
	AccountID uint
	ProjectID uint
	Category  string
}

// ExpenseRepository persists expense ledger rows
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates an expense repository bound to a database handle
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// FetchAll returns expenses matching the filter, date ascending
func (r *ExpenseRepository) FetchAll(filter LedgerFilter) ([]view.Expense, error) {
	query := r.db.Order("date ASC")
	if filter.AccountID != 0 {
		query = query.Where("account_id = ?", filter.AccountID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var rows []model.Expense
	if err := query.Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	expenses := make([]view.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, view.ExpenseToView(row))
	}
	return expenses, nil
}

// FetchByID returns one expense
func (r *ExpenseRepository) FetchByID(id uint) (*view.Expense, error) {
	var row model.Expense
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.ExpenseToView(row)
	return &v, nil
}

// Create writes a new expense and returns the persisted row
func (r *ExpenseRepository) Create(v view.Expense) (*view.Expense, error) {
	row := view.ExpenseFromView(v)
	row.ID = 0
	if err := r.db.Create(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(row.ID)
}

// Update saves an existing expense
func (r *ExpenseRepository) Update(v view.Expense) (*view.Expense, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}
	var existing model.Expense
	if err := r.db.First(&existing, v.ID).Error; err != nil {
		return nil, wrap(err)
	}
	row := view.ExpenseFromView(v)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.Save(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(v.ID)
}

// Delete removes an expense row
func (r *ExpenseRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Expense{}, id)
	if result.Error != nil {
		return wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncomeRepository persists income ledger rows
type IncomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates an income repository bound to a database handle
func NewIncomeRepository(db *gorm.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// FetchAll returns incomes matching the filter, date ascending
func (r *IncomeRepository) FetchAll(filter LedgerFilter) ([]view.Income, error) {
	query := r.db.Order("date ASC")
	if filter.AccountID != 0 {
		query = query.Where("account_id = ?", filter.AccountID)
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var rows []model.Income
	if err := query.Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	incomes := make([]view.Income, 0, len(rows))
	for _, row := range rows {
		incomes = append(incomes, view.IncomeToView(row))
	}
	return incomes, nil
}

// FetchByID returns one income
func (r *IncomeRepository) FetchByID(id uint) (*view.Income, error) {
	var row model.Income
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.IncomeToView(row)
	return &v, nil
}

// Create writes a new income and returns the persisted row
func (r *IncomeRepository) Create(v view.Income) (*view.Income, error) {
	row := view.IncomeFromView(v)
	row.ID = 0
	if err := r.db.Create(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(row.ID)
}

// Update saves an existing income
func (r *IncomeRepository) Update(v view.Income) (*view.Income, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}
	var existing model.Income
	if err := r.db.First(&existing, v.ID).Error; err != nil {
		return nil, wrap(err)
	}
	row := view.IncomeFromView(v)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.Save(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(v.ID)
}

// Delete removes an income row
func (r *IncomeRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Income{}, id)
	if result.Error != nil {
		return wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
