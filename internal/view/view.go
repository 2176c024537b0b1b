// Package view holds the shapes pages consume and the row mappers that
// translate them to and from the storage models. Mapping is pure and total:
// nullable storage columns become "", 0, false or an empty slice, never null,
// so consumers do not null-check. The inverse direction drops generated
// fields and re-attaches foreign keys.
package view

import "time"

// dateLayout is the wire format for date-only fields in view models.
const dateLayout = "2006-01-02"

func dateToView(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func dateFromView(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// Total mapping: an unparseable date degrades to "unset" rather
		// than failing the whole row.
		return nil
	}
	return &t
}

func idToView(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}

func idFromView(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
