package model

// Category is the hierarchy node documents are filed under. Owned by the
// category store; the document core only resolves ids and creates nodes
// on the fly during save.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	ParentID  uint
	Extension string
	Language  string
	Published int
}
