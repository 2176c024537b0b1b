package repository

import (
	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"gorm.io/gorm"
)

// ProjectFilter narrows FetchAll. Zero values filter nothing.
type ProjectFilter struct {
	ClientID uint
	Status   string
}

// ProjectRepository persists projects and their collaborator assignments
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a project repository bound to a database handle
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FetchAll returns projects matching the filter, name ascending
func (r *ProjectRepository) FetchAll(filter ProjectFilter) ([]view.Project, error) {
	query := r.db.Preload("Collaborators").Order("name ASC")
	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var rows []model.Project
	if err := query.Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}

	projects := make([]view.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, view.ProjectToView(row))
	}
	return projects, nil
}

// FetchByID returns one project with its collaborators
func (r *ProjectRepository) FetchByID(id uint) (*view.Project, error) {
	var row model.Project
	if err := r.db.Preload("Collaborators").First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.ProjectToView(row)
	return &v, nil
}

// Create writes the project and its collaborators in one transaction, then
// re-fetches the assembled entity
func (r *ProjectRepository) Create(v view.Project) (*view.Project, error) {
	row := view.ProjectFromView(v)
	row.ID = 0

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return wrap(err)
		}
		return r.syncCollaborators(tx, row.ID, v.Collaborators)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(row.ID)
}

// Update saves the project and reconciles its collaborators in one
// transaction
func (r *ProjectRepository) Update(v view.Project) (*view.Project, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Project
		if err := tx.First(&existing, v.ID).Error; err != nil {
			return wrap(err)
		}

		row := view.ProjectFromView(v)
		row.CreatedAt = existing.CreatedAt
		if err := tx.Save(&row).Error; err != nil {
			return wrap(err)
		}
		return r.syncCollaborators(tx, row.ID, v.Collaborators)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(v.ID)
}

// SetStatus flips the project status only
func (r *ProjectRepository) SetStatus(id uint, status string) (*view.Project, error) {
	result := r.db.Model(&model.Project{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FetchByID(id)
}

// Delete removes the project and its collaborator assignments in one
// transaction
func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectCollaborator{}).Error; err != nil {
			return wrap(err)
		}

		result := tx.Delete(&model.Project{}, id)
		if result.Error != nil {
			return wrap(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *ProjectRepository) syncCollaborators(tx *gorm.DB, projectID uint, desired []view.ProjectCollaborator) error {
	rows := make([]model.ProjectCollaborator, 0, len(desired))
	for _, c := range desired {
		rows = append(rows, view.ProjectCollaboratorFromView(c, projectID))
	}
	return syncOwned(tx, "project_id", projectID, rows, func(m model.ProjectCollaborator) uint { return m.ID })
}
