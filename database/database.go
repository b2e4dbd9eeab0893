package database

import (
	"Hoard/internal/config"
	"Hoard/internal/models"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"log"
	"os"
)

func SetupDatabase(configuration *config.Configuration) (*gorm.DB, error) {
	dialector, err := openDialector(configuration)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the store uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Record{},
		&models.Event{},
		&models.LocationHistory{},
		&models.Counter{},
		&models.Setting{},
	)
}

func openDialector(configuration *config.Configuration) (gorm.Dialector, error) {
	switch configuration.Database.Driver {
	case "sqlite":
		return sqlite.Open(configuration.Database.Path), nil
	case "postgres":
		dsn, err := postgresDSN()
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", configuration.Database.Driver)
	}
}

func postgresDSN() (string, error) {
	// A missing .env is fine, the variables may come from the environment.
	_ = godotenv.Load()
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) == "" && envVariable != "DB_SSLMODE" {
			return "", errors.New(fmt.Sprintf("%s environment variable not set", envVariable))
		}
		if envVariable == "DB_SSLMODE" && os.Getenv(envVariable) == "" {
			err := os.Setenv("DB_SSLMODE", "disable")
			if err != nil {
				return "", err
			}
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
