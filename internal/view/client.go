package view

import "github.com/CristianHourcade/Piria-sub000/internal/model"

// Client is the client view model
type Client struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Company      string          `json:"company"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Notes        string          `json:"notes"`
	Status       string          `json:"status"`
	RenewalDate  string          `json:"renewalDate"`
	BillingCycle string          `json:"billingCycle"`
	Services     []ClientService `json:"services"`
}

// ClientService is the view model for a service owned by a client
type ClientService struct {
	ID              uint                  `json:"id"`
	Name            string                `json:"name"`
	Price           float64               `json:"price"`
	PaymentScheme   string                `json:"paymentScheme"`
	Collaborators   []ServiceCollaborator `json:"collaborators"`
	PartialPayments []PartialPayment      `json:"partialPayments"`
}

// ServiceCollaborator is the view model for a user assigned to a service
type ServiceCollaborator struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

// PartialPayment is the view model for a scheduled installment
type PartialPayment struct {
	ID         uint    `json:"id"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"dueDate"`
	Status     string  `json:"status"`
}

// ClientToView maps a storage row (with its joined children) to the view model
func ClientToView(m model.Client) Client {
	v := Client{
		ID:           m.ID,
		Name:         m.Name,
		Company:      m.Company,
		Email:        m.Email,
		Phone:        m.Phone,
		Notes:        m.Notes,
		Status:       m.Status,
		RenewalDate:  dateToView(m.RenewalDate),
		BillingCycle: m.BillingCycle,
		Services:     make([]ClientService, 0, len(m.Services)),
	}
	for _, s := range m.Services {
		v.Services = append(v.Services, ClientServiceToView(s))
	}
	return v
}

// ClientFromView maps the view model back to a root storage row. Owned
// children are written separately by the synchronizer, so Services is not
// carried here.
func ClientFromView(v Client) model.Client {
	status := v.Status
	if status == "" {
		status = model.ClientStatusActive
	}
	return model.Client{
		ID:           v.ID,
		Name:         v.Name,
		Company:      v.Company,
		Email:        v.Email,
		Phone:        v.Phone,
		Notes:        v.Notes,
		Status:       status,
		RenewalDate:  dateFromView(v.RenewalDate),
		BillingCycle: v.BillingCycle,
	}
}

// ClientServiceToView maps a service row with its joined children
func ClientServiceToView(m model.ClientService) ClientService {
	v := ClientService{
		ID:              m.ID,
		Name:            m.Name,
		Price:           m.Price,
		PaymentScheme:   m.PaymentScheme,
		Collaborators:   make([]ServiceCollaborator, 0, len(m.Collaborators)),
		PartialPayments: make([]PartialPayment, 0, len(m.PartialPayments)),
	}
	for _, c := range m.Collaborators {
		v.Collaborators = append(v.Collaborators, ServiceCollaborator{
			ID:     c.ID,
			UserID: c.UserID,
			Role:   c.Role,
		})
	}
	for _, p := range m.PartialPayments {
		v.PartialPayments = append(v.PartialPayments, PartialPayment{
			ID:         p.ID,
			Percentage: p.Percentage,
			Amount:     p.Amount,
			DueDate:    dateToView(p.DueDate),
			Status:     p.Status,
		})
	}
	return v
}

// ClientServiceFromView maps a service view model back to a storage row,
// re-attaching the owning client's foreign key
func ClientServiceFromView(v ClientService, clientID uint) model.ClientService {
	scheme := v.PaymentScheme
	if scheme == "" {
		scheme = model.PaymentSchemeFull
	}
	return model.ClientService{
		ID:            v.ID,
		ClientID:      clientID,
		Name:          v.Name,
		Price:         v.Price,
		PaymentScheme: scheme,
	}
}

// ServiceCollaboratorFromView re-attaches the owning service's foreign key
func ServiceCollaboratorFromView(v ServiceCollaborator, serviceID uint) model.ServiceCollaborator {
	return model.ServiceCollaborator{
		ID:        v.ID,
		ServiceID: serviceID,
		UserID:    v.UserID,
		Role:      v.Role,
	}
}

// PartialPaymentFromView re-attaches the owning service's foreign key
func PartialPaymentFromView(v PartialPayment, serviceID uint) model.PartialPayment {
	status := v.Status
	if status == "" {
		status = model.PaymentStatusPending
	}
	return model.PartialPayment{
		ID:         v.ID,
		ServiceID:  serviceID,
		Percentage: v.Percentage,
		Amount:     v.Amount,
		DueDate:    dateFromView(v.DueDate),
		Status:     status,
	}
}
