package repository

import (
	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"gorm.io/gorm"
)

// LeadRepository persists leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a lead repository bound to a database handle
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// FetchAll returns leads, name ascending. An empty status filters nothing.
func (r *LeadRepository) FetchAll(status string) ([]view.Lead, error) {
	query := r.db.Order("name ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []model.Lead
	if err := query.Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	leads := make([]view.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, view.LeadToView(row))
	}
	return leads, nil
}

// FetchByID returns one lead
func (r *LeadRepository) FetchByID(id uint) (*view.Lead, error) {
	var row model.Lead
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.LeadToView(row)
	return &v, nil
}

// Create writes a new lead and returns the persisted row
func (r *LeadRepository) Create(v view.Lead) (*view.Lead, error) {
	row := view.LeadFromView(v)
	row.ID = 0
	if err := r.db.Create(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(row.ID)
}

// Update saves an existing lead
func (r *LeadRepository) Update(v view.Lead) (*view.Lead, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}
	var existing model.Lead
	if err := r.db.First(&existing, v.ID).Error; err != nil {
		return nil, wrap(err)
	}
	row := view.LeadFromView(v)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.Save(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(v.ID)
}

// SetStatus advances the lead through the pipeline
func (r *LeadRepository) SetStatus(id uint, status string) (*view.Lead, error) {
	result := r.db.Model(&model.Lead{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FetchByID(id)
}

// Delete removes a lead row
func (r *LeadRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Lead{}, id)
	if result.Error != nil {
		return wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
