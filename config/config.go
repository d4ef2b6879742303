package config

import (
	"log"

	"coffee-shop-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything read from the environment at startup
type Config struct {
	Port          string `envconfig:"PORT" default:":8080"`
	Env           string `envconfig:"ENV" default:"development"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"coffee_shop.db"`
	JWTSecret     string `envconfig:"JWT_SECRET" default:"kopi_cerita_super_secret_2024"`
	ServiceFee    int    `envconfig:"SERVICE_FEE" default:"2000"` // flat Rupiah surcharge per order
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

var (
	DB  *gorm.DB
	Log *zap.Logger
	App Config
)

// JWTSecret returns the token signing key as bytes
func JWTSecret() []byte {
	return []byte(App.JWTSecret)
}

// Load reads .env (if present) and the environment into App, and sets up the
// global zap logger.
func Load() {
	_ = godotenv.Load()

	if err := envconfig.Process("", &App); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	var err error
	if App.Env == "development" {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
}

// InitDB connects to Postgres when DATABASE_URL is set, otherwise falls back
// to a local SQLite file, and auto-migrates all models.
func InitDB() {
	var dialector gorm.Dialector
	if App.DatabaseURL != "" {
		dialector = postgres.Open(App.DatabaseURL)
	} else {
		dialector = sqlite.Open(App.SQLitePath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	Log.Info("Database connected and migrated",
		zap.Bool("postgres", App.DatabaseURL != ""))
}

// Migrate runs the gorm auto-migration for every model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductModifier{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Review{},
		&models.Wishlist{},
		&models.Notification{},
		&models.SiteSetting{},
	)
}
