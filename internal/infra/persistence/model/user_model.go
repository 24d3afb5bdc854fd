// Package model defines the GORM persistence models mirroring the database
// tables. They are mapped to and from the pure domain entities at the
// repository boundary.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Birthdate    time.Time `gorm:"type:date;not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null;column:password_hash"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Ownership edges, kept explicit rather than as an ORM-managed collection.
	OwnedBooks []OwnershipModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
