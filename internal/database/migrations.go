package database

import (
	"upkeep/internal/logger"
	"upkeep/internal/models"
)

// MigrateModels runs GORM AutoMigrate for all models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []interface{}{
		&models.User{},
		&models.UserSettings{},
		&models.Item{},
		&models.MaintenanceTask{},
		&models.MaintenanceLog{},
		&models.ScheduledReminder{},
		&models.ServiceProvider{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			log.Error("Failed to migrate model", "model", model, "error", err)
			return err
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates additional indexes that GORM doesn't create automatically
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_maintenance_tasks_user_due ON maintenance_tasks(user_id, next_due)",
		"CREATE INDEX IF NOT EXISTS idx_maintenance_tasks_item_active ON maintenance_tasks(item_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_maintenance_logs_user_completed ON maintenance_logs(user_id, completed_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_scheduled_reminders_user_fire ON scheduled_reminders(user_id, fire_at)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
			// Continue with other indexes even if one fails
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
