package view

import "github.com/CristianHourcade/Piria-sub000/internal/model"

// Task is the task view model
type Task struct {
	ID                  uint          `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	ProjectID           uint          `json:"projectId"`
	ClientID            uint          `json:"clientId"`
	AssigneeID          uint          `json:"assigneeId"`
	DueDate             string        `json:"dueDate"`
	Status              string        `json:"status"`
	Priority            string        `json:"priority"`
	ManuallyPrioritized bool          `json:"manuallyPrioritized"`
	Comments            []TaskComment `json:"comments"`
	TimeEntries         []TimeEntry   `json:"timeEntries"`
}

// TaskComment is the view model for a comment on a task
type TaskComment struct {
	ID       uint   `json:"id"`
	AuthorID uint   `json:"authorId"`
	Body     string `json:"body"`
}

// TimeEntry is the view model for time logged against a task
type TimeEntry struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"userId"`
	Minutes int    `json:"minutes"`
	Date    string `json:"date"`
	Note    string `json:"note"`
}

// TaskToView maps a task row with its joined children to the view model
func TaskToView(m model.Task) Task {
	v := Task{
		ID:                  m.ID,
		Title:               m.Title,
		Description:         m.Description,
		ProjectID:           idToView(m.ProjectID),
		ClientID:            idToView(m.ClientID),
		AssigneeID:          idToView(m.AssigneeID),
		DueDate:             dateToView(m.DueDate),
		Status:              m.Status,
		Priority:            m.Priority,
		ManuallyPrioritized: m.ManuallyPrioritized,
		Comments:            make([]TaskComment, 0, len(m.Comments)),
		TimeEntries:         make([]TimeEntry, 0, len(m.TimeEntries)),
	}
	for _, c := range m.Comments {
		v.Comments = append(v.Comments, TaskComment{ID: c.ID, AuthorID: c.AuthorID, Body: c.Body})
	}
	for _, e := range m.TimeEntries {
		v.TimeEntries = append(v.TimeEntries, TimeEntry{
			ID:      e.ID,
			UserID:  e.UserID,
			Minutes: e.Minutes,
			Date:    dateToView(e.Date),
			Note:    e.Note,
		})
	}
	return v
}

// TaskFromView maps the view model back to a root storage row
func TaskFromView(v Task) model.Task {
	status := v.Status
	if status == "" {
		status = model.TaskStatusPending
	}
	priority := v.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}
	return model.Task{
		ID:                  v.ID,
		Title:               v.Title,
		Description:         v.Description,
		ProjectID:           idFromView(v.ProjectID),
		ClientID:            idFromView(v.ClientID),
		AssigneeID:          idFromView(v.AssigneeID),
		DueDate:             dateFromView(v.DueDate),
		Status:              status,
		Priority:            priority,
		ManuallyPrioritized: v.ManuallyPrioritized,
	}
}

// TaskCommentFromView re-attaches the owning task's foreign key
func TaskCommentFromView(v TaskComment, taskID uint) model.TaskComment {
	return model.TaskComment{ID: v.ID, TaskID: taskID, AuthorID: v.AuthorID, Body: v.Body}
}

// TimeEntryFromView re-attaches the owning task's foreign key
func TimeEntryFromView(v TimeEntry, taskID uint) model.TimeEntry {
	return model.TimeEntry{
		ID:      v.ID,
		TaskID:  taskID,
		UserID:  v.UserID,
		Minutes: v.Minutes,
		Date:    dateFromView(v.Date),
		Note:    v.Note,
	}
}
