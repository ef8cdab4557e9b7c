package database

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"karaoke/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using embedded SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Room{},
		&domain.Booking{},
		&domain.Session{},
		&domain.SongEntry{},
		&domain.MenuItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Bill{},
	)
}

// Seed populates the room and menu catalogs once. It is idempotent: a
// non-empty room catalog means seeding already ran.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := []domain.Room{
		{Name: "Room A", Capacity: 4},
		{Name: "Room B", Capacity: 8},
		{Name: "VIP", Capacity: 10},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	menu := []domain.MenuItem{
		{Name: "Cola 0.5", Price: decimal.NewFromInt(250), Category: domain.MenuDrink},
		{Name: "Beer", Price: decimal.NewFromInt(350), Category: domain.MenuDrink},
		{Name: "Pizza", Price: decimal.NewFromInt(700), Category: domain.MenuFood},
	}
	return db.Create(&menu).Error
}
