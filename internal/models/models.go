// SPDX-License-Identifier: MIT
package models

import "time"

// Copy document kinds
const (
	KindPage  = "page"
	KindLegal = "legal"
)

// CopyDocument stores one locale's copy for one page as a JSON body
type CopyDocument struct {
	ID        uint   `gorm:"primaryKey"`
	Locale    string `gorm:"not null;uniqueIndex:idx_copy_key"`
	Kind      string `gorm:"not null;uniqueIndex:idx_copy_key"` // "page" or "legal"
	PageID    string `gorm:"not null;uniqueIndex:idx_copy_key"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CopyDocument) TableName() string {
	return "copy_documents"
}
