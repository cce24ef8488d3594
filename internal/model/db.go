package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Category{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&DocumentUser{}, &DocumentGroup{}, &DocumentTag{}); err != nil {
		return err
	}

	return nil
}
