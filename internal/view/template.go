package view

import "github.com/CristianHourcade/Piria-sub000/internal/model"

// TaskTemplate is the task template view model
type TaskTemplate struct {
	ID          uint               `json:"id"`
	ServiceName string             `json:"serviceName"`
	AutoAssign  bool               `json:"autoAssign"`
	Items       []TaskTemplateItem `json:"items"`
}

// TaskTemplateItem is one ordered step of a template
type TaskTemplateItem struct {
	ID           uint   `json:"id"`
	Position     int    `json:"position"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DurationDays int    `json:"durationDays"`
	Role         string `json:"role"`
}

// TaskTemplateToView maps a template row with its joined items to the view model
func TaskTemplateToView(m model.TaskTemplate) TaskTemplate {
	v := TaskTemplate{
		ID:          m.ID,
		ServiceName: m.ServiceName,
		AutoAssign:  m.AutoAssign,
		Items:       make([]TaskTemplateItem, 0, len(m.Items)),
	}
	for _, it := range m.Items {
		v.Items = append(v.Items, TaskTemplateItem{
			ID:           it.ID,
			Position:     it.Position,
			Name:         it.Name,
			Description:  it.Description,
			DurationDays: it.DurationDays,
			Role:         it.Role,
		})
	}
	return v
}

// TaskTemplateFromView maps the view model back to a root storage row
func TaskTemplateFromView(v TaskTemplate) model.TaskTemplate {
	return model.TaskTemplate{
		ID:          v.ID,
		ServiceName: v.ServiceName,
		AutoAssign:  v.AutoAssign,
	}
}

// TaskTemplateItemFromView re-attaches the owning template's foreign key
func TaskTemplateItemFromView(v TaskTemplateItem, templateID uint) model.TaskTemplateItem {
	return model.TaskTemplateItem{
		ID:           v.ID,
		TemplateID:   templateID,
		Position:     v.Position,
		Name:         v.Name,
		Description:  v.Description,
		DurationDays: v.DurationDays,
		Role:         v.Role,
	}
}
