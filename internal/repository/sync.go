package repository

import "gorm.io/gorm"

// The relation synchronizer reconciles an owned child collection against the
// rows currently persisted for a parent: rows missing from the desired set
// are deleted, rows whose id matches an existing row are updated, everything
// else is inserted. Deletes run first so reused identifiers cannot collide.

// partitionChildren splits the desired child rows against the persisted id
// set. A desired row updates when it carries an id present in existing;
// otherwise it inserts. Existing ids absent from desired are returned as
// stale. Pure; ordering of desired is preserved across updates and inserts.
func partitionChildren[M any](existing []uint, desired []M, idOf func(M) uint) (updates, inserts []M, stale []uint) {
	existingSet := make(map[uint]bool, len(existing))
	for _, id := range existing {
		existingSet[id] = true
	}

	desiredSet := make(map[uint]bool, len(desired))
	for _, m := range desired {
		if id := idOf(m); id != 0 {
			desiredSet[id] = true
		}
	}

	for _, id := range existing {
		if !desiredSet[id] {
			stale = append(stale, id)
		}
	}

	for _, m := range desired {
		if id := idOf(m); id != 0 && existingSet[id] {
			updates = append(updates, m)
		} else {
			inserts = append(inserts, m)
		}
	}
	return updates, inserts, stale
}

// syncOwned reconciles one owned collection inside the caller's transaction.
// desired must already carry the parent foreign key. After it returns nil,
// the persisted children for parentID equal desired up to generated ids.
func syncOwned[M any](tx *gorm.DB, parentColumn string, parentID uint, desired []M, idOf func(M) uint) error {
	var existing []uint
	if err := tx.Model(new(M)).Where(parentColumn+" = ?", parentID).Pluck("id", &existing).Error; err != nil {
		return wrap(err)
	}

	updates, inserts, stale := partitionChildren(existing, desired, idOf)

	if len(stale) > 0 {
		if err := tx.Delete(new(M), stale).Error; err != nil {
			return wrap(err)
		}
	}
	for i := range updates {
		// Save writes every column; the original creation time stays put
		if err := tx.Omit("created_at").Save(&updates[i]).Error; err != nil {
			return wrap(err)
		}
	}
	for i := range inserts {
		if err := tx.Create(&inserts[i]).Error; err != nil {
			return wrap(err)
		}
	}
	return nil
}
