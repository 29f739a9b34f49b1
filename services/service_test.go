package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/PremPrakashCodes/preplate/configs"
	"github.com/PremPrakashCodes/preplate/entity"
	"github.com/PremPrakashCodes/preplate/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedVenue creates an open restaurant with one category and two menu items
// priced 10.00 and 5.00. Returns the restaurant and the item ids.
func seedVenue(t *testing.T, db *gorm.DB) (*entity.Restaurant, uint, uint) {
	t.Helper()

	rest := &entity.Restaurant{
		Email:    "kitchen@x.com",
		Password: "irrelevant",
		Name:     "Test Kitchen",
		Cuisine:  "Italian",
		IsOpen:   true,
	}
	require.NoError(t, db.Create(rest).Error)

	cat := &entity.Category{Name: "Mains", IsActive: true, RestaurantID: rest.ID}
	require.NoError(t, db.Create(cat).Error)

	pasta := &entity.MenuItem{
		Name: "Pasta", Price: dec("10.00"), IsAvailable: true, CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(pasta).Error)

	soup := &entity.MenuItem{
		Name: "Soup", Price: dec("5.00"), IsAvailable: true, CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(soup).Error)

	return rest, pasta.ID, soup.ID
}

func newOrderServiceForTest(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
		nil,
	)
}
