package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Document states. A document can only be physically deleted while trashed.
const (
	StateTrashed     = -2
	StateUnpublished = 0
	StatePublished   = 1
)

// Document is a metadata record paired with one owned file on disk.
// The folder containing the file belongs to the document and is removed
// together with it.
type Document struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	Alias        string `gorm:"index:idx_documents_alias_category"`
	CategoryID   uint   `gorm:"index:idx_documents_alias_category"`
	ClientID     int
	LanguageID   int
	State        int `gorm:"default:0"`
	Ordering     int
	FileName     string
	Metadata     string
	Created      time.Time
	CreatedBy    int64
	Modified     time.Time
	ModifiedBy   int64
	DownloadLast *time.Time
}

// Check validates the record invariants before it is stored.
func (d *Document) Check() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.FileName, validation.Required),
		validation.Field(&d.CategoryID, validation.Required),
		validation.Field(&d.State, validation.In(StateTrashed, StateUnpublished, StatePublished)),
	)
}
