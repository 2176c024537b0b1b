package view

import (
	"testing"
	"time"

	"github.com/CristianHourcade/Piria-sub000/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestClientToViewDefaults(t *testing.T) {
	// A row with every optional column empty must map to defined defaults,
	// never null
	v := ClientToView(model.Client{ID: 7, Name: "Juan Pérez", Status: model.ClientStatusActive})

	assert.Equal(t, uint(7), v.ID)
	assert.Equal(t, "Juan Pérez", v.Name)
	assert.Equal(t, "", v.Company)
	assert.Equal(t, "", v.RenewalDate)
	assert.NotNil(t, v.Services)
	assert.Empty(t, v.Services)
}

func TestClientRoundTrip(t *testing.T) {
	renewal := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	row := model.Client{
		ID:           3,
		Name:         "Juan Pérez",
		Company:      "Empresa A",
		Email:        "juan@empresa-a.com",
		Phone:        "+54 11 5555-0000",
		Notes:        "renueva en marzo",
		Status:       model.ClientStatusActive,
		RenewalDate:  &renewal,
		BillingCycle: "mensual",
	}

	back := ClientFromView(ClientToView(row))

	assert.Equal(t, row.ID, back.ID)
	assert.Equal(t, row.Name, back.Name)
	assert.Equal(t, row.Company, back.Company)
	assert.Equal(t, row.Email, back.Email)
	assert.Equal(t, row.Phone, back.Phone)
	assert.Equal(t, row.Notes, back.Notes)
	assert.Equal(t, row.Status, back.Status)
	assert.Equal(t, row.BillingCycle, back.BillingCycle)
	if assert.NotNil(t, back.RenewalDate) {
		assert.True(t, renewal.Equal(*back.RenewalDate))
	}
}

func TestClientServiceRoundTripCarriesForeignKey(t *testing.T) {
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	row := model.ClientService{
		ID:            11,
		ClientID:      3,
		Name:          "SEO",
		Price:         1000,
		PaymentScheme: model.PaymentSchemePartial,
		Collaborators: []model.ServiceCollaborator{
			{ID: 21, ServiceID: 11, UserID: 42, Role: "Diseño"},
		},
		PartialPayments: []model.PartialPayment{
			{ID: 31, ServiceID: 11, Percentage: 50, Amount: 500, DueDate: &due, Status: model.PaymentStatusPending},
		},
	}

	v := ClientServiceToView(row)
	assert.Len(t, v.Collaborators, 1)
	assert.Len(t, v.PartialPayments, 1)
	assert.Equal(t, "2026-01-10", v.PartialPayments[0].DueDate)

	back := ClientServiceFromView(v, 3)
	assert.Equal(t, row.ID, back.ID)
	assert.Equal(t, uint(3), back.ClientID)
	assert.Equal(t, row.Name, back.Name)
	assert.Equal(t, row.Price, back.Price)
	assert.Equal(t, row.PaymentScheme, back.PaymentScheme)

	collab := ServiceCollaboratorFromView(v.Collaborators[0], back.ID)
	assert.Equal(t, uint(11), collab.ServiceID)
	assert.Equal(t, uint(42), collab.UserID)

	payment := PartialPaymentFromView(v.PartialPayments[0], back.ID)
	assert.Equal(t, uint(11), payment.ServiceID)
	assert.Equal(t, 500.0, payment.Amount)
	if assert.NotNil(t, payment.DueDate) {
		assert.True(t, due.Equal(*payment.DueDate))
	}
}

func TestClientFromViewDefaultsStatus(t *testing.T) {
	row := ClientFromView(Client{Name: "Nuevo"})
	assert.Equal(t, model.ClientStatusActive, row.Status)
}

func TestDateFromViewIsTotal(t *testing.T) {
	// Garbage input degrades to unset instead of failing the row
	assert.Nil(t, dateFromView(""))
	assert.Nil(t, dateFromView("no es una fecha"))
	assert.NotNil(t, dateFromView("2026-09-01"))
}
