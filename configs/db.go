package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
)

// ConnectDB opens the store selected by DB_DRIVER. TranslateError is on so
// unique-index violations surface as gorm.ErrDuplicatedKey on both drivers.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}

	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), gcfg)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBSource), gcfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{},
		&entity.Category{}, &entity.MenuItem{}, &entity.BusinessHour{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{}, &entity.FavoriteRestaurant{},
	)
}
