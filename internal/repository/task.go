package repository

import (
	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"gorm.io/gorm"
)

// TaskFilter narrows FetchAll. Zero values filter nothing.
type TaskFilter struct {
	Status     string
	AssigneeID uint
	ProjectID  uint
	ClientID   uint
}

// TaskRepository persists tasks with their comments and time entries
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a task repository bound to a database handle
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Comments").Preload("TimeEntries")
}

// FetchAll returns tasks matching the filter, due date ascending with
// undated tasks last
func (r *TaskRepository) FetchAll(filter TaskFilter) ([]view.Task, error) {
	query := r.preload(r.db).Order("due_date ASC NULLS LAST")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != 0 {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}

	var rows []model.Task
	if err := query.Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}

	tasks := make([]view.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, view.TaskToView(row))
	}
	return tasks, nil
}

// FetchForUser returns the tasks assigned to one user. A user with no tasks
// gets an empty list, not an error.
func (r *TaskRepository) FetchForUser(userID uint) ([]view.Task, error) {
	return r.FetchAll(TaskFilter{AssigneeID: userID})
}

// FetchByID returns one task with its comments and time entries
func (r *TaskRepository) FetchByID(id uint) (*view.Task, error) {
	var row model.Task
	if err := r.preload(r.db).First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.TaskToView(row)
	return &v, nil
}

// Create writes the task and its owned collections in one transaction, then
// re-fetches the assembled entity
func (r *TaskRepository) Create(v view.Task) (*view.Task, error) {
	row := view.TaskFromView(v)
	row.ID = 0

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return wrap(err)
		}
		return r.syncChildren(tx, row.ID, v)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(row.ID)
}

// Update saves the task and reconciles comments and time entries in one
// transaction
func (r *TaskRepository) Update(v view.Task) (*view.Task, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Task
		if err := tx.First(&existing, v.ID).Error; err != nil {
			return wrap(err)
		}

		row := view.TaskFromView(v)
		row.CreatedAt = existing.CreatedAt
		if err := tx.Save(&row).Error; err != nil {
			return wrap(err)
		}
		return r.syncChildren(tx, row.ID, v)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(v.ID)
}

// SetStatus flips the task status only
func (r *TaskRepository) SetStatus(id uint, status string) (*view.Task, error) {
	result := r.db.Model(&model.Task{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FetchByID(id)
}

// Delete removes the task and its owned collections in one transaction
func (r *TaskRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskComment{}).Error; err != nil {
			return wrap(err)
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.TimeEntry{}).Error; err != nil {
			return wrap(err)
		}

		result := tx.Delete(&model.Task{}, id)
		if result.Error != nil {
			return wrap(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *TaskRepository) syncChildren(tx *gorm.DB, taskID uint, v view.Task) error {
	comments := make([]model.TaskComment, 0, len(v.Comments))
	for _, c := range v.Comments {
		comments = append(comments, view.TaskCommentFromView(c, taskID))
	}
	if err := syncOwned(tx, "task_id", taskID, comments, func(m model.TaskComment) uint { return m.ID }); err != nil {
		return err
	}

	entries := make([]model.TimeEntry, 0, len(v.TimeEntries))
	for _, e := range v.TimeEntries {
		entries = append(entries, view.TimeEntryFromView(e, taskID))
	}
	return syncOwned(tx, "task_id", taskID, entries, func(m model.TimeEntry) uint { return m.ID })
}
