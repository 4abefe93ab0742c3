package model

import (
	"sort"
	"strings"
)

// User is a back-office panel account.
type User struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	IsActive    bool     `json:"isActive"`
	Status      string   `json:"status"`
}

// Normalize fills the derived display fields the backend sometimes omits.
func (u *User) Normalize() {
	if u.Name == "" {
		u.Name = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	if u.Status == "" {
		if u.IsActive {
			u.Status = "active"
		} else {
			u.Status = "inactive"
		}
	}
	if u.Role == "" {
		u.Role = string(RoleFromPermissions(u.Permissions))
	}
}

// HasPermission checks a single capability key.
func (u *User) HasPermission(key string) bool {
	for _, p := range u.Permissions {
		if p == key {
			return true
		}
	}
	return false
}

// UserInput is the create/update payload. Permissions is the checkbox state
// keyed by capability; only keys set to true are transmitted.
type UserInput struct {
	FirstName   string          `json:"firstName" validate:"required"`
	LastName    string          `json:"lastName" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Phone       string          `json:"phone"`
	Password    string          `json:"password" validate:"omitempty,min=6"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"-"`
	IsActive    *bool           `json:"isActive"`
}

// GrantedPermissions serializes the permission map to the sorted list of
// granted keys.
func (in *UserInput) GrantedPermissions() []string {
	granted := make([]string, 0, len(in.Permissions))
	for key, on := range in.Permissions {
		if on {
			granted = append(granted, key)
		}
	}
	sort.Strings(granted)
	return granted
}

// SplitFullName separates a single full-name input into first and last name.
// Kept for the legacy add-user path that collects one name field.
func SplitFullName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	last = strings.Join(parts[1:], " ")
	return first, last
}

type UserPage struct {
	Users []User
	Total int
}
