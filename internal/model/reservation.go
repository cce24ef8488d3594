package model

// DocumentUser marks an exclusive claim a user currently holds on a
// document. Rows are written by the reservation surface, only read here.
type DocumentUser struct {
	DocumentID uint  `gorm:"primaryKey;autoIncrement:false"`
	UserID     int64 `gorm:"primaryKey;autoIncrement:false"`
}

// DocumentGroup is the group counterpart of DocumentUser.
type DocumentGroup struct {
	DocumentID uint  `gorm:"primaryKey;autoIncrement:false"`
	GroupID    int64 `gorm:"primaryKey;autoIncrement:false"`
}

// DocumentTag associates an externally tracked tag id with a document.
type DocumentTag struct {
	DocumentID uint  `gorm:"primaryKey;autoIncrement:false"`
	TagID      int64 `gorm:"primaryKey;autoIncrement:false"`
}
