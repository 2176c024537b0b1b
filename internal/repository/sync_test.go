package repository

import (
	"testing"

	"github.com/CristianHourcade/Piria-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collaboratorID(m model.ServiceCollaborator) uint { return m.ID }

func TestPartitionChildren(t *testing.T) {
	existing := []uint{1, 2, 3}
	desired := []model.ServiceCollaborator{
		{ID: 2, UserID: 10},
		{ID: 0, UserID: 11},
		{ID: 3, UserID: 12},
		{ID: 99, UserID: 13}, // id unknown to the persisted set → insert
	}

	updates, inserts, stale := partitionChildren(existing, desired, collaboratorID)

	require.Len(t, updates, 2)
	assert.Equal(t, uint(2), updates[0].ID)
	assert.Equal(t, uint(3), updates[1].ID)

	require.Len(t, inserts, 2)
	assert.Equal(t, uint(11), inserts[0].UserID)
	assert.Equal(t, uint(13), inserts[1].UserID)

	assert.Equal(t, []uint{1}, stale)
}

func TestPartitionChildrenEmptyDesired(t *testing.T) {
	updates, inserts, stale := partitionChildren([]uint{4, 5}, nil, collaboratorID)

	assert.Empty(t, updates)
	assert.Empty(t, inserts)
	assert.Equal(t, []uint{4, 5}, stale)
}

func TestPartitionChildrenAllNew(t *testing.T) {
	desired := []model.ServiceCollaborator{{UserID: 1}, {UserID: 2}}
	updates, inserts, stale := partitionChildren(nil, desired, collaboratorID)

	assert.Empty(t, updates)
	assert.Len(t, inserts, 2)
	assert.Empty(t, stale)
}

func TestSyncOwnedReconciles(t *testing.T) {
	db := newTestDB(t)

	seed := []model.ServiceCollaborator{
		{ServiceID: 1, UserID: 10, Role: "Diseño"},
		{ServiceID: 1, UserID: 11, Role: "Contenido"},
		{ServiceID: 2, UserID: 12, Role: "Ads"}, // other parent, must survive
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	// Keep the first (renamed role), drop the second, add a third
	desired := []model.ServiceCollaborator{
		{ID: seed[0].ID, ServiceID: 1, UserID: 10, Role: "Dirección"},
		{ServiceID: 1, UserID: 13, Role: "Dev"},
	}
	require.NoError(t, syncOwned(db, "service_id", 1, desired, collaboratorID))

	var rows []model.ServiceCollaborator
	require.NoError(t, db.Where("service_id = ?", 1).Order("user_id ASC").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dirección", rows[0].Role)
	assert.Equal(t, uint(13), rows[1].UserID)

	var other int64
	require.NoError(t, db.Model(&model.ServiceCollaborator{}).Where("service_id = ?", 2).Count(&other).Error)
	assert.Equal(t, int64(1), other)
}

func TestSyncOwnedToEmpty(t *testing.T) {
	db := newTestDB(t)

	seed := []model.PartialPayment{
		{ServiceID: 1, Amount: 500, Status: model.PaymentStatusPending},
		{ServiceID: 1, Amount: 500, Status: model.PaymentStatusPaid},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	require.NoError(t, syncOwned(db, "service_id", 1, []model.PartialPayment(nil), func(m model.PartialPayment) uint { return m.ID }))

	var count int64
	require.NoError(t, db.Model(&model.PartialPayment{}).Where("service_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
