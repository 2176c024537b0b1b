package repository

import (
	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"gorm.io/gorm"
)

// TemplateRepository persists task templates and their ordered items
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a template repository bound to a database
// handle
func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// FetchAll returns every template with its items, service name ascending
func (r *TemplateRepository) FetchAll() ([]view.TaskTemplate, error) {
	var rows []model.TaskTemplate
	if err := r.preload(r.db).Order("service_name ASC").Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	templates := make([]view.TaskTemplate, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, view.TaskTemplateToView(row))
	}
	return templates, nil
}

// FetchByID returns one template with its ordered items
func (r *TemplateRepository) FetchByID(id uint) (*view.TaskTemplate, error) {
	var row model.TaskTemplate
	if err := r.preload(r.db).First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.TaskTemplateToView(row)
	return &v, nil
}

// FetchByService returns the template for one service name, or ErrNotFound
func (r *TemplateRepository) FetchByService(serviceName string) (*view.TaskTemplate, error) {
	var row model.TaskTemplate
	if err := r.preload(r.db).Where("service_name = ?", serviceName).First(&row).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.TaskTemplateToView(row)
	return &v, nil
}

// Create writes the template and its items in one transaction, then
// re-fetches the assembled entity
func (r *TemplateRepository) Create(v view.TaskTemplate) (*view.TaskTemplate, error) {
	row := view.TaskTemplateFromView(v)
	row.ID = 0

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return wrap(err)
		}
		return r.syncItems(tx, row.ID, v.Items)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(row.ID)
}

// Update saves the template and reconciles its items in one transaction
func (r *TemplateRepository) Update(v view.TaskTemplate) (*view.TaskTemplate, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.TaskTemplate
		if err := tx.First(&existing, v.ID).Error; err != nil {
			return wrap(err)
		}

		row := view.TaskTemplateFromView(v)
		row.CreatedAt = existing.CreatedAt
		if err := tx.Save(&row).Error; err != nil {
			return wrap(err)
		}
		return r.syncItems(tx, row.ID, v.Items)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(v.ID)
}

// Delete removes the template and its items in one transaction
func (r *TemplateRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&model.TaskTemplateItem{}).Error; err != nil {
			return wrap(err)
		}

		result := tx.Delete(&model.TaskTemplate{}, id)
		if result.Error != nil {
			return wrap(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *TemplateRepository) syncItems(tx *gorm.DB, templateID uint, desired []view.TaskTemplateItem) error {
	rows := make([]model.TaskTemplateItem, 0, len(desired))
	for i, item := range desired {
		row := view.TaskTemplateItemFromView(item, templateID)
		// Items are an ordered list; position follows the submitted order
		row.Position = i
		rows = append(rows, row)
	}
	return syncOwned(tx, "template_id", templateID, rows, func(m model.TaskTemplateItem) uint { return m.ID })
}
