package setup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// MigrateDB creates or updates the schema for every persisted entity. The
// unique indexes declared on the models are what make uniqueness race-free;
// application-level pre-checks are advisory only.
func MigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Comment{},
		&domain.Like{},
		&domain.Subject{},
	)
	if err != nil {
		return fmt.Errorf("setup: migrate database: %w", err)
	}
	return nil
}
