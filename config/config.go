package config

import (
	"os"

	"delivery-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env if present and resolves settings. Missing .env is fine;
// plain environment variables win either way.
func Load(log *logrus.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "delivery_api_dev_secret"))
}

// InitDB opens the sqlite database and migrates all models.
func InitDB(log *logrus.Logger) {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "delivery.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Restaurant{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	log.Info("database connected and migrated")
}
