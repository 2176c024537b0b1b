package repository

import (
	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"gorm.io/gorm"
)

// UserRepository reads and writes the identity mirror used for assignee and
// responsible lookups
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to a database handle
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FetchAll returns users, name ascending. activeOnly narrows to active users.
func (r *UserRepository) FetchAll(activeOnly bool) ([]view.User, error) {
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var rows []model.User
	if err := query.Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	users := make([]view.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, view.UserToView(row))
	}
	return users, nil
}

// FetchByID returns one user
func (r *UserRepository) FetchByID(id uint) (*view.User, error) {
	var row model.User
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.UserToView(row)
	return &v, nil
}

// IDByName resolves a human-readable name to the user's id. Pages stamp
// assignees and responsibles by name; this is the lookup behind that.
func (r *UserRepository) IDByName(name string) (uint, error) {
	var row model.User
	if err := r.db.Where("name = ?", name).First(&row).Error; err != nil {
		return 0, wrap(err)
	}
	return row.ID, nil
}

// Create writes a new user and returns the persisted row
func (r *UserRepository) Create(v view.User) (*view.User, error) {
	row := view.UserFromView(v)
	row.ID = 0
	if err := r.db.Create(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(row.ID)
}

// Update saves an existing user
func (r *UserRepository) Update(v view.User) (*view.User, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}
	var existing model.User
	if err := r.db.First(&existing, v.ID).Error; err != nil {
		return nil, wrap(err)
	}
	row := view.UserFromView(v)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.Save(&row).Error; err != nil {
		return nil, wrap(err)
	}
	return r.FetchByID(v.ID)
}
