package db

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barbertime/barbertime-api/internal/config"
	"github.com/barbertime/barbertime-api/internal/models"
	"github.com/barbertime/barbertime-api/internal/seed"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.ShopInfo{},
		&models.Service{},
		&models.Barber{},
		&models.Appointment{},
		&models.AdminUser{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaults(db, cfg)

	return db
}

// Banco novo sobe já com a loja e o catálogo de fábrica.
func seedDefaults(db *gorm.DB, cfg *config.Config) {
	var count int64

	db.Model(&models.ShopInfo{}).Count(&count)
	if count == 0 {
		info := seed.ShopInfo()
		db.Create(&info)
	}

	db.Model(&models.Service{}).Count(&count)
	if count == 0 {
		services := seed.Services()
		db.Create(&services)
	}

	db.Model(&models.Barber{}).Count(&count)
	if count == 0 {
		barbers := seed.Barbers()
		db.Create(&barbers)
	}

	if cfg.BootstrapAdminEmail != "" && cfg.BootstrapAdminPassword != "" {
		db.Model(&models.AdminUser{}).
			Where("email = ?", cfg.BootstrapAdminEmail).
			Count(&count)
		if count == 0 {
			hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapAdminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("failed to hash bootstrap admin password: %v", err)
				return
			}
			db.Create(&models.AdminUser{
				ID:           uuid.NewString(),
				Email:        cfg.BootstrapAdminEmail,
				PasswordHash: string(hashed),
			})
		}
	}
}
