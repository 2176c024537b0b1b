package view

import "github.com/CristianHourcade/Piria-sub000/internal/model"

// Lead is the lead view model
type Lead struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Company        string  `json:"company"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Source         string  `json:"source"`
	Status         string  `json:"status"`
	EstimatedValue float64 `json:"estimatedValue"`
	Notes          string  `json:"notes"`
}

// LeadToView maps a lead row to the view model
func LeadToView(m model.Lead) Lead {
	return Lead{
		ID:             m.ID,
		Name:           m.Name,
		Company:        m.Company,
		Email:          m.Email,
		Phone:          m.Phone,
		Source:         m.Source,
		Status:         m.Status,
		EstimatedValue: m.EstimatedValue,
		Notes:          m.Notes,
	}
}

// LeadFromView maps the view model back to a storage row
func LeadFromView(v Lead) model.Lead {
	status := v.Status
	if status == "" {
		status = model.LeadStatusNew
	}
	return model.Lead{
		ID:             v.ID,
		Name:           v.Name,
		Company:        v.Company,
		Email:          v.Email,
		Phone:          v.Phone,
		Source:         v.Source,
		Status:         status,
		EstimatedValue: v.EstimatedValue,
		Notes:          v.Notes,
	}
}
