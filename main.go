package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devan2636/astrodev-backend/api"
	"github.com/devan2636/astrodev-backend/config"
	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/models"
	"github.com/devan2636/astrodev-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := openDatabase(c, newLogger)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := seedAdminProfile(currentDB, c); err != nil {
		fmt.Printf("Error seeding admin profile: %v\n", err)
		os.Exit(1)
	}

	storage := openStorage(c)
	mailer := services.NewMailer(
		config.GetString(c, "RESEND_API_KEY", ""),
		config.GetString(c, "RESEND_FROM_EMAIL", ""),
	)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, storage, mailer)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase connects per DB_TYPE: postgres for deployments, sqlite for
// local development.
func openDatabase(c map[string]string, gormLogger logger.Interface) (*gorm.DB, error) {
	dbType := config.GetString(c, "DB_TYPE", "postgres")
	fmt.Printf("DB_TYPE: %s\n", dbType)

	switch dbType {
	case "postgres":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(c, "DB_HOST", "localhost"),
			config.GetString(c, "DB_USER", "postgres"),
			config.GetString(c, "DB_PASSWORD", ""),
			config.GetString(c, "DB_NAME", "astrodev"),
			config.GetString(c, "DB_PORT", "5432"),
			config.GetString(c, "DB_SSLMODE", "require"),
		)
		fmt.Println("Connecting to Postgres database...")
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
			Logger:      gormLogger,
		})
	case "sqlite":
		path := config.GetString(c, "SQLITE_PATH", "astrodev.db")
		fmt.Println("Connecting to SQLite database...")
		return gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

// seedAdminProfile creates the bootstrap admin account from the environment
// if it does not already exist.
func seedAdminProfile(db database.Database, c map[string]string) error {
	email := config.GetString(c, "ADMIN_EMAIL", "")
	password := config.GetString(c, "ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		zlog.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	existing, err := db.ProfileRepo().FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	profile := models.Profile{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.ProfileRepo().Add(&profile); err != nil {
		return err
	}
	zlog.Info().Str("email", email).Msg("Seeded admin profile")
	return nil
}

// openStorage builds the S3-backed document store, or returns nil when no
// bucket is configured and the document library endpoints report unavailable.
func openStorage(c map[string]string) api.ObjectStorage {
	bucket := config.GetString(c, "S3_BUCKET", "")
	if bucket == "" {
		zlog.Warn().Msg("S3_BUCKET not set, document storage disabled")
		return nil
	}

	storage, err := services.NewStorage(
		context.Background(),
		bucket,
		config.GetString(c, "S3_REGION", "us-east-1"),
		config.GetString(c, "S3_PUBLIC_BASE_URL", ""),
	)
	if err != nil {
		zlog.Error().Err(err).Msg("Failed to initialize document storage, continuing without it")
		return nil
	}
	return storage
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
