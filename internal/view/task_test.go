package view

import (
	"testing"
	"time"

	"github.com/CristianHourcade/Piria-sub000/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTaskToViewDefaults(t *testing.T) {
	v := TaskToView(model.Task{ID: 1, Title: "Kickoff", Status: model.TaskStatusPending, Priority: model.TaskPriorityMedium})

	assert.Equal(t, uint(0), v.ProjectID)
	assert.Equal(t, uint(0), v.ClientID)
	assert.Equal(t, uint(0), v.AssigneeID)
	assert.Equal(t, "", v.DueDate)
	assert.NotNil(t, v.Comments)
	assert.NotNil(t, v.TimeEntries)
}

func TestTaskRoundTrip(t *testing.T) {
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	project := uint(5)
	assignee := uint(42)
	row := model.Task{
		ID:                  9,
		Title:               "Auditoría SEO",
		Description:         "revisión inicial",
		ProjectID:           &project,
		AssigneeID:          &assignee,
		DueDate:             &due,
		Status:              model.TaskStatusInProgress,
		Priority:            model.TaskPriorityHigh,
		ManuallyPrioritized: true,
	}

	back := TaskFromView(TaskToView(row))

	assert.Equal(t, row.ID, back.ID)
	assert.Equal(t, row.Title, back.Title)
	assert.Equal(t, row.Description, back.Description)
	assert.Equal(t, row.Status, back.Status)
	assert.Equal(t, row.Priority, back.Priority)
	assert.Equal(t, row.ManuallyPrioritized, back.ManuallyPrioritized)
	if assert.NotNil(t, back.ProjectID) {
		assert.Equal(t, project, *back.ProjectID)
	}
	if assert.NotNil(t, back.AssigneeID) {
		assert.Equal(t, assignee, *back.AssigneeID)
	}
	assert.Nil(t, back.ClientID)
	if assert.NotNil(t, back.DueDate) {
		assert.True(t, due.Equal(*back.DueDate))
	}
}

func TestTaskFromViewDefaults(t *testing.T) {
	row := TaskFromView(Task{Title: "Sin estado"})
	assert.Equal(t, model.TaskStatusPending, row.Status)
	assert.Equal(t, model.TaskPriorityMedium, row.Priority)
}

func TestTimeEntryFromViewCarriesForeignKey(t *testing.T) {
	entry := TimeEntryFromView(TimeEntry{ID: 2, UserID: 42, Minutes: 90, Note: "llamada"}, 9)
	assert.Equal(t, uint(9), entry.TaskID)
	assert.Equal(t, 90, entry.Minutes)
}
