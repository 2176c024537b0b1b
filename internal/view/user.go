package view

import "github.com/CristianHourcade/Piria-sub000/internal/model"

// User is the user view model
type User struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// UserToView maps a user row to the view model
func UserToView(m model.User) User {
	return User{ID: m.ID, Name: m.Name, Email: m.Email, Role: m.Role, Active: m.Active}
}

// UserFromView maps the view model back to a storage row
func UserFromView(v User) model.User {
	return model.User{ID: v.ID, Name: v.Name, Email: v.Email, Role: v.Role, Active: v.Active}
}
