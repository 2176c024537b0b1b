package repository

import (
	"errors"
	"testing"

	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreateAndFetch(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	created, err := repo.Create(view.Task{
		Title:      "Auditoría SEO",
		AssigneeID: 42,
		DueDate:    "2026-02-01",
		Priority:   model.TaskPriorityHigh,
		Comments:   []view.TaskComment{{AuthorID: 42, Body: "arrancamos el lunes"}},
		TimeEntries: []view.TimeEntry{
			{UserID: 42, Minutes: 60, Date: "2026-01-20", Note: "kickoff"},
		},
	})
	require.NoError(t, err)

	fetched, err := repo.FetchByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Auditoría SEO", fetched.Title)
	assert.Equal(t, model.TaskStatusPending, fetched.Status)
	assert.Equal(t, uint(42), fetched.AssigneeID)
	require.Len(t, fetched.Comments, 1)
	require.Len(t, fetched.TimeEntries, 1)
	assert.Equal(t, 60, fetched.TimeEntries[0].Minutes)
}

func TestTaskFetchForUserEmpty(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	// A user with zero assigned tasks gets an empty list, not an error
	tasks, err := repo.FetchForUser(42)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskFetchForUser(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	_, err := repo.Create(view.Task{Title: "Mía", AssigneeID: 42})
	require.NoError(t, err)
	_, err = repo.Create(view.Task{Title: "De otro", AssigneeID: 7})
	require.NoError(t, err)
	_, err = repo.Create(view.Task{Title: "Sin asignar"})
	require.NoError(t, err)

	tasks, err := repo.FetchForUser(42)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Mía", tasks[0].Title)
}

func TestTaskFetchAllFilters(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	_, err := repo.Create(view.Task{Title: "A", ProjectID: 1, Status: model.TaskStatusInProgress})
	require.NoError(t, err)
	_, err = repo.Create(view.Task{Title: "B", ProjectID: 1})
	require.NoError(t, err)
	_, err = repo.Create(view.Task{Title: "C", ProjectID: 2})
	require.NoError(t, err)

	byProject, err := repo.FetchAll(TaskFilter{ProjectID: 1})
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byStatus, err := repo.FetchAll(TaskFilter{Status: model.TaskStatusInProgress})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "A", byStatus[0].Title)
}

func TestTaskUpdateReconcilesComments(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	created, err := repo.Create(view.Task{
		Title: "Con comentarios",
		Comments: []view.TaskComment{
			{AuthorID: 1, Body: "primero"},
			{AuthorID: 2, Body: "segundo"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Comments, 2)

	created.Comments = []view.TaskComment{
		created.Comments[0],
		{AuthorID: 3, Body: "tercero"},
	}
	updated, err := repo.Update(*created)
	require.NoError(t, err)

	require.Len(t, updated.Comments, 2)
	bodies := []string{updated.Comments[0].Body, updated.Comments[1].Body}
	assert.ElementsMatch(t, []string{"primero", "tercero"}, bodies)
}

func TestTaskSequentialStatusUpdatesLastWriteWins(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	created, err := repo.Create(view.Task{Title: "Estado"})
	require.NoError(t, err)

	_, err = repo.SetStatus(created.ID, model.TaskStatusInProgress)
	require.NoError(t, err)
	final, err := repo.SetStatus(created.ID, model.TaskStatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, model.TaskStatusCompleted, final.Status)
}

func TestTaskDeleteRemovesChildren(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	created, err := repo.Create(view.Task{
		Title:       "Borrar",
		Comments:    []view.TaskComment{{AuthorID: 1, Body: "chau"}},
		TimeEntries: []view.TimeEntry{{UserID: 1, Minutes: 30}},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.FetchByID(created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	var comments, entries int64
	require.NoError(t, repo.db.Model(&model.TaskComment{}).Where("task_id = ?", created.ID).Count(&comments).Error)
	require.NoError(t, repo.db.Model(&model.TimeEntry{}).Where("task_id = ?", created.ID).Count(&entries).Error)
	assert.Zero(t, comments)
	assert.Zero(t, entries)
}
