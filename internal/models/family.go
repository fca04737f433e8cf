package models

import (
	"gorm.io/gorm"
)

// FamilyRole names a member's role within a family. Authorization is
// decided by capability, never by matching on the role name.
type FamilyRole string

const (
	RoleParent FamilyRole = "parent"
	RoleChild  FamilyRole = "child"
	RoleAdmin  FamilyRole = "admin"
)

// Family groups users that share boards, tasks and points.
type Family struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	gorm.Model
}

// TableName specifies the table name for Family Model
func (Family) TableName() string {
	return "families"
}

// FamilyMember links a user to a family under a role.
type FamilyMember struct {
	ID       string     `json:"id" gorm:"primaryKey"`
	FamilyID string     `json:"familyId" gorm:"column:family_id;index"`
	UserID   string     `json:"userId" gorm:"column:user_id;index"`
	Name     string     `json:"name"`
	Role     FamilyRole `json:"role" gorm:"default:'child'"`
	Points   int        `json:"points" gorm:"default:0"`
	gorm.Model
}

// TableName specifies the table name for FamilyMember Model
func (FamilyMember) TableName() string {
	return "family_members"
}
