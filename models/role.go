package models

// Role names. Contributors submit content for review; admins review it and
// manage users.
const (
	RoleContributor = "contributor"
	RoleAdmin       = "admin"
)

type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// ValidRole reports whether name is an assignable role.
func ValidRole(name string) bool {
	return name == RoleContributor || name == RoleAdmin
}
