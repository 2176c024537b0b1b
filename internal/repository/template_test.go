package repository

import (
	"errors"
	"testing"

	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateCreatePreservesItemOrder(t *testing.T) {
	repo := NewTemplateRepository(newTestDB(t))

	created, err := repo.Create(view.TaskTemplate{
		ServiceName: "SEO",
		AutoAssign:  true,
		Items: []view.TaskTemplateItem{
			{Name: "Auditoría", DurationDays: 3, Role: "Analista"},
			{Name: "Keyword research", DurationDays: 5, Role: "Analista"},
			{Name: "Informe", DurationDays: 2, Role: "Cuentas"},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Items, 3)
	assert.Equal(t, "Auditoría", created.Items[0].Name)
	assert.Equal(t, "Keyword research", created.Items[1].Name)
	assert.Equal(t, "Informe", created.Items[2].Name)
	assert.Equal(t, 0, created.Items[0].Position)
	assert.Equal(t, 2, created.Items[2].Position)
}

func TestTemplateUpdateReordersItems(t *testing.T) {
	repo := NewTemplateRepository(newTestDB(t))

	created, err := repo.Create(view.TaskTemplate{
		ServiceName: "Branding",
		Items: []view.TaskTemplateItem{
			{Name: "Moodboard"},
			{Name: "Logo"},
		},
	})
	require.NoError(t, err)

	// Swap the order and drop nothing; positions follow the submitted order
	created.Items = []view.TaskTemplateItem{created.Items[1], created.Items[0]}
	updated, err := repo.Update(*created)
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.Equal(t, "Logo", updated.Items[0].Name)
	assert.Equal(t, "Moodboard", updated.Items[1].Name)
}

func TestTemplateFetchByService(t *testing.T) {
	repo := NewTemplateRepository(newTestDB(t))

	_, err := repo.Create(view.TaskTemplate{ServiceName: "SEO"})
	require.NoError(t, err)

	tpl, err := repo.FetchByService("SEO")
	require.NoError(t, err)
	assert.Equal(t, "SEO", tpl.ServiceName)

	_, err = repo.FetchByService("Inexistente")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTemplateDeleteRemovesItems(t *testing.T) {
	repo := NewTemplateRepository(newTestDB(t))

	created, err := repo.Create(view.TaskTemplate{
		ServiceName: "Ads",
		Items:       []view.TaskTemplateItem{{Name: "Setup"}},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.FetchByID(created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
