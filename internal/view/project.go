package view

import "github.com/CristianHourcade/Piria-sub000/internal/model"

// Project is the project view model
type Project struct {
	ID            uint                  `json:"id"`
	ClientID      uint                  `json:"clientId"`
	Name          string                `json:"name"`
	Service       string                `json:"service"`
	Status        string                `json:"status"`
	Progress      int                   `json:"progress"`
	ResponsibleID uint                  `json:"responsibleId"`
	Price         float64               `json:"price"`
	Budget        float64               `json:"budget"`
	Cost          float64               `json:"cost"`
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	Collaborators []ProjectCollaborator `json:"collaborators"`
}

// ProjectCollaborator is the view model for a user assigned to a project
type ProjectCollaborator struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

// ProjectToView maps a project row with its joined children to the view model
func ProjectToView(m model.Project) Project {
	v := Project{
		ID:            m.ID,
		ClientID:      m.ClientID,
		Name:          m.Name,
		Service:       m.Service,
		Status:        m.Status,
		Progress:      m.Progress,
		ResponsibleID: idToView(m.ResponsibleID),
		Price:         m.Price,
		Budget:        m.Budget,
		Cost:          m.Cost,
		StartDate:     dateToView(m.StartDate),
		EndDate:       dateToView(m.EndDate),
		Collaborators: make([]ProjectCollaborator, 0, len(m.Collaborators)),
	}
	for _, c := range m.Collaborators {
		v.Collaborators = append(v.Collaborators, ProjectCollaborator{
			ID:     c.ID,
			UserID: c.UserID,
			Role:   c.Role,
		})
	}
	return v
}

// ProjectFromView maps the view model back to a root storage row
func ProjectFromView(v Project) model.Project {
	status := v.Status
	if status == "" {
		status = model.ProjectStatusProposal
	}
	return model.Project{
		ID:            v.ID,
		ClientID:      v.ClientID,
		Name:          v.Name,
		Service:       v.Service,
		Status:        status,
		Progress:      v.Progress,
		ResponsibleID: idFromView(v.ResponsibleID),
		Price:         v.Price,
		Budget:        v.Budget,
		Cost:          v.Cost,
		StartDate:     dateFromView(v.StartDate),
		EndDate:       dateFromView(v.EndDate),
	}
}

// ProjectCollaboratorFromView re-attaches the owning project's foreign key
func ProjectCollaboratorFromView(v ProjectCollaborator, projectID uint) model.ProjectCollaborator {
	return model.ProjectCollaborator{
		ID:        v.ID,
		ProjectID: projectID,
		UserID:    v.UserID,
		Role:      v.Role,
	}
}
