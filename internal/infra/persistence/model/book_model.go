package model

import "time"

// BookModel mirrors the 'books' table.
type BookModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Genre     string `gorm:"type:varchar(100)"`
	Author    string `gorm:"type:varchar(255);not null"`
	Image     string `gorm:"type:varchar(512)"`
	Title     string `gorm:"type:varchar(255);not null"`
	Subtitle  string `gorm:"type:varchar(255);not null"`
	Publisher string `gorm:"type:varchar(255);not null"`
	Year      string `gorm:"type:varchar(8);not null"`
	Pages     string `gorm:"type:varchar(8);not null"`
	ISBN      string `gorm:"type:varchar(20);not null;index;column:isbn"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// OwnershipModel mirrors the 'user_books' join table: one row per ownership
// edge. The composite unique index enforces the no-duplicate invariant at the
// store level; Position preserves insertion order.
type OwnershipModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_user_books_edge"`
	BookID    int64 `gorm:"not null;uniqueIndex:idx_user_books_edge"`
	Position  int64 `gorm:"not null"`
	CreatedAt time.Time

	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (OwnershipModel) TableName() string {
	return "user_books"
}
