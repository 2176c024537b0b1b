package repository

import (
	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/view"

	"gorm.io/gorm"
)

// ClientRepository persists clients and their owned subtree
// (services, service collaborators, partial payments)
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a client repository bound to a database handle
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Services").
		Preload("Services.Collaborators").
		Preload("Services.PartialPayments")
}

// FetchAll returns all clients with their services, name ascending. An empty
// status filters nothing.
func (r *ClientRepository) FetchAll(status string) ([]view.Client, error) {
	query := r.preload(r.db).Order("name ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []model.Client
	if err := query.Find(&rows).Error; err != nil {
		return nil, wrap(err)
	}

	clients := make([]view.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, view.ClientToView(row))
	}
	return clients, nil
}

// FetchByID returns one client with its full subtree
func (r *ClientRepository) FetchByID(id uint) (*view.Client, error) {
	var row model.Client
	if err := r.preload(r.db).First(&row, id).Error; err != nil {
		return nil, wrap(err)
	}
	v := view.ClientToView(row)
	return &v, nil
}

// Create writes the client row and its owned subtree in one transaction,
// then re-fetches so the caller sees exactly what was persisted, generated
// ids and defaults included.
func (r *ClientRepository) Create(v view.Client) (*view.Client, error) {
	row := view.ClientFromView(v)
	row.ID = 0

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return wrap(err)
		}
		return r.syncServices(tx, row.ID, v.Services)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(row.ID)
}

// Update saves the client row and reconciles its owned subtree in one
// transaction. Calling it twice with the same view is idempotent.
func (r *ClientRepository) Update(v view.Client) (*view.Client, error) {
	if v.ID == 0 {
		return nil, ErrNotFound
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Client
		if err := tx.First(&existing, v.ID).Error; err != nil {
			return wrap(err)
		}

		row := view.ClientFromView(v)
		// Save writes every column, so carry the original creation time
		row.CreatedAt = existing.CreatedAt
		if err := tx.Save(&row).Error; err != nil {
			return wrap(err)
		}
		return r.syncServices(tx, row.ID, v.Services)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(v.ID)
}

// SetStatus flips the client status without touching its services
func (r *ClientRepository) SetStatus(id uint, status string) (*view.Client, error) {
	result := r.db.Model(&model.Client{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FetchByID(id)
}

// Delete removes the client and cascades over its owned subtree in one
// transaction
func (r *ClientRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var serviceIDs []uint
		if err := tx.Model(&model.ClientService{}).Where("client_id = ?", id).Pluck("id", &serviceIDs).Error; err != nil {
			return wrap(err)
		}
		if len(serviceIDs) > 0 {
			if err := tx.Where("service_id IN ?", serviceIDs).Delete(&model.ServiceCollaborator{}).Error; err != nil {
				return wrap(err)
			}
			if err := tx.Where("service_id IN ?", serviceIDs).Delete(&model.PartialPayment{}).Error; err != nil {
				return wrap(err)
			}
			if err := tx.Where("client_id = ?", id).Delete(&model.ClientService{}).Error; err != nil {
				return wrap(err)
			}
		}

		result := tx.Delete(&model.Client{}, id)
		if result.Error != nil {
			return wrap(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// syncServices reconciles the service collection one level at a time: the
// services themselves first, then each service's collaborators and partial
// payments once its id is known.
func (r *ClientRepository) syncServices(tx *gorm.DB, clientID uint, desired []view.ClientService) error {
	var existing []uint
	if err := tx.Model(&model.ClientService{}).Where("client_id = ?", clientID).Pluck("id", &existing).Error; err != nil {
		return wrap(err)
	}

	rows := make([]model.ClientService, 0, len(desired))
	for _, svc := range desired {
		rows = append(rows, view.ClientServiceFromView(svc, clientID))
	}
	updates, inserts, stale := partitionChildren(existing, rows, func(m model.ClientService) uint { return m.ID })

	// Stale services take their own children with them
	if len(stale) > 0 {
		if err := tx.Where("service_id IN ?", stale).Delete(&model.ServiceCollaborator{}).Error; err != nil {
			return wrap(err)
		}
		if err := tx.Where("service_id IN ?", stale).Delete(&model.PartialPayment{}).Error; err != nil {
			return wrap(err)
		}
		if err := tx.Delete(&model.ClientService{}, stale).Error; err != nil {
			return wrap(err)
		}
	}
	for i := range updates {
		if err := tx.Omit("created_at").Save(&updates[i]).Error; err != nil {
			return wrap(err)
		}
	}
	for i := range inserts {
		if err := tx.Create(&inserts[i]).Error; err != nil {
			return wrap(err)
		}
	}

	// Second level: persisted ids are now known for every surviving service.
	// updates and inserts preserve the relative order of desired, so walk
	// desired again pairing each view with its row.
	ui, ii := 0, 0
	for _, svc := range desired {
		var row model.ClientService
		if svc.ID != 0 && containsID(existing, svc.ID) {
			row = updates[ui]
			ui++
		} else {
			row = inserts[ii]
			ii++
		}

		collaborators := make([]model.ServiceCollaborator, 0, len(svc.Collaborators))
		for _, c := range svc.Collaborators {
			collaborators = append(collaborators, view.ServiceCollaboratorFromView(c, row.ID))
		}
		if err := syncOwned(tx, "service_id", row.ID, collaborators, func(m model.ServiceCollaborator) uint { return m.ID }); err != nil {
			return err
		}

		payments := make([]model.PartialPayment, 0, len(svc.PartialPayments))
		for _, p := range svc.PartialPayments {
			payments = append(payments, view.PartialPaymentFromView(p, row.ID))
		}
		if err := syncOwned(tx, "service_id", row.ID, payments, func(m model.PartialPayment) uint { return m.ID }); err != nil {
			return err
		}
	}
	return nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
