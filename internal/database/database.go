package database

import (
	"fmt"

	"tracekit/internal/config"
	"tracekit/internal/logging"
	"tracekit/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	gormLogger := logging.NewGormZapLogger(log)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// AutoMigrate creates tables, columns and foreign keys but not custom
	// indexes, so those are handled separately below.
	err := DB.AutoMigrate(
		&models.SessionSummaryRecord{},
		&models.StrokeFeatureRecord{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	strokeIndex := `CREATE INDEX IF NOT EXISTS idx_stroke_features_query ON stroke_features (session_id, stroke_index);`
	if err := DB.Exec(strokeIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on stroke features table", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
