package repository

import (
	"errors"
	"testing"

	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateAndFetch(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	created, err := repo.Create(view.Client{
		Name:    "Juan Pérez",
		Company: "Empresa A",
		Services: []view.ClientService{
			{Name: "SEO", Price: 1000, PaymentScheme: model.PaymentSchemeFull},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := repo.FetchByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", fetched.Name)
	assert.Equal(t, "Empresa A", fetched.Company)
	assert.Equal(t, model.ClientStatusActive, fetched.Status)
	require.Len(t, fetched.Services, 1)
	assert.Equal(t, "SEO", fetched.Services[0].Name)
	assert.Equal(t, 1000.0, fetched.Services[0].Price)
	assert.NotZero(t, fetched.Services[0].ID)
}

func TestClientCreateWithNestedChildren(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	created, err := repo.Create(view.Client{
		Name: "Empresa B",
		Services: []view.ClientService{
			{
				Name:          "Branding",
				Price:         4000,
				PaymentScheme: model.PaymentSchemePartial,
				Collaborators: []view.ServiceCollaborator{
					{UserID: 42, Role: "Diseño"},
				},
				PartialPayments: []view.PartialPayment{
					{Percentage: 50, Amount: 2000, DueDate: "2026-02-01"},
					{Percentage: 50, Amount: 2000, DueDate: "2026-03-01"},
				},
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Services, 1)
	svc := created.Services[0]
	require.Len(t, svc.Collaborators, 1)
	assert.Equal(t, uint(42), svc.Collaborators[0].UserID)
	require.Len(t, svc.PartialPayments, 2)
	assert.Equal(t, model.PaymentStatusPending, svc.PartialPayments[0].Status)
	assert.Equal(t, "2026-02-01", svc.PartialPayments[0].DueDate)
}

func TestClientUpdateReconcilesServices(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	created, err := repo.Create(view.Client{
		Name: "Empresa C",
		Services: []view.ClientService{
			{Name: "SEO", Price: 1000},
			{Name: "Ads", Price: 800},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Services, 2)

	// Rename one service, drop the other, add a new one
	created.Services[0].Price = 1200
	created.Services = []view.ClientService{
		created.Services[0],
		{Name: "Social", Price: 600},
	}
	updated, err := repo.Update(*created)
	require.NoError(t, err)

	require.Len(t, updated.Services, 2)
	names := []string{updated.Services[0].Name, updated.Services[1].Name}
	assert.ElementsMatch(t, []string{"SEO", "Social"}, names)
	for _, svc := range updated.Services {
		if svc.Name == "SEO" {
			assert.Equal(t, 1200.0, svc.Price)
		}
	}
}

func TestClientUpdateServicesToEmpty(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	created, err := repo.Create(view.Client{
		Name:     "Empresa D",
		Services: []view.ClientService{{Name: "SEO", Price: 1000}},
	})
	require.NoError(t, err)
	serviceID := created.Services[0].ID

	created.Services = []view.ClientService{}
	updated, err := repo.Update(*created)
	require.NoError(t, err)
	assert.Empty(t, updated.Services)

	// The service row itself is gone, not orphaned
	db := repo.db
	var count int64
	require.NoError(t, db.Model(&model.ClientService{}).Where("id = ?", serviceID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestClientUpdateIsIdempotent(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	created, err := repo.Create(view.Client{
		Name:     "Empresa E",
		Services: []view.ClientService{{Name: "SEO", Price: 1000}},
	})
	require.NoError(t, err)

	first, err := repo.Update(*created)
	require.NoError(t, err)
	second, err := repo.Update(*first)
	require.NoError(t, err)

	assert.Equal(t, first.Services, second.Services)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Status, second.Status)
}

func TestClientLastWriteWins(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	created, err := repo.Create(view.Client{Name: "Empresa F"})
	require.NoError(t, err)

	a := *created
	a.Status = model.ClientStatusInactive
	_, err = repo.Update(a)
	require.NoError(t, err)

	b := *created
	b.Status = model.ClientStatusActive
	_, err = repo.Update(b)
	require.NoError(t, err)

	final, err := repo.FetchByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ClientStatusActive, final.Status)
}

func TestClientSetStatusKeepsServices(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	created, err := repo.Create(view.Client{
		Name:     "Empresa G",
		Services: []view.ClientService{{Name: "SEO", Price: 1000}},
	})
	require.NoError(t, err)

	disabled, err := repo.SetStatus(created.ID, model.ClientStatusInactive)
	require.NoError(t, err)
	assert.Equal(t, model.ClientStatusInactive, disabled.Status)
	assert.Len(t, disabled.Services, 1)

	// Reactivation is the inverse flip
	enabled, err := repo.SetStatus(created.ID, model.ClientStatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.ClientStatusActive, enabled.Status)
	assert.Len(t, enabled.Services, 1)
}

func TestClientDeleteCascades(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	created, err := repo.Create(view.Client{
		Name: "Empresa H",
		Services: []view.ClientService{
			{
				Name:            "Branding",
				Price:           4000,
				Collaborators:   []view.ServiceCollaborator{{UserID: 42, Role: "Diseño"}},
				PartialPayments: []view.PartialPayment{{Amount: 2000}},
			},
		},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.FetchByID(created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	db := repo.db
	var services, collaborators, payments int64
	require.NoError(t, db.Model(&model.ClientService{}).Where("client_id = ?", created.ID).Count(&services).Error)
	require.NoError(t, db.Model(&model.ServiceCollaborator{}).Count(&collaborators).Error)
	require.NoError(t, db.Model(&model.PartialPayment{}).Count(&payments).Error)
	assert.Zero(t, services)
	assert.Zero(t, collaborators)
	assert.Zero(t, payments)
}

func TestClientFetchAllEmpty(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	clients, err := repo.FetchAll("")
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestClientFetchAllFiltersByStatus(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	_, err := repo.Create(view.Client{Name: "Activo SA"})
	require.NoError(t, err)
	inactive, err := repo.Create(view.Client{Name: "Baja SA"})
	require.NoError(t, err)
	_, err = repo.SetStatus(inactive.ID, model.ClientStatusInactive)
	require.NoError(t, err)

	actives, err := repo.FetchAll(model.ClientStatusActive)
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, "Activo SA", actives[0].Name)
}

func TestClientFetchByIDNotFound(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	_, err := repo.FetchByID(12345)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClientDeleteNotFound(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))

	err := repo.Delete(12345)
	assert.True(t, errors.Is(err, ErrNotFound))
}
