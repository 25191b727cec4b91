package seed

import (
	"time"
	"upkeep/config"
	"upkeep/internal/logger"
	. "upkeep/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

// Seed loads a demo account with one vehicle and a couple of tasks so a fresh
// development environment has something to look at.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	user := User{
		Email:        "demo@example.com",
		DisplayName:  "Demo User",
		PasswordHash: string(hash),
		IsActive:     true,
	}

	var existing User
	if err := db.First(&existing, "email = ?", user.Email).Error; err == nil {
		log.Info("Seed user already exists", "email", user.Email)
		return nil
	}

	if err := db.Create(&user).Error; err != nil {
		return log.Err("failed to create seed user", err)
	}

	settings := UserSettings{
		UserID:               user.ID,
		NotificationsEnabled: true,
		DefaultReminderDays:  DefaultReminderDays,
		DueSoonWindowDays:    DefaultDueSoonWindowDays,
	}
	if err := db.Create(&settings).Error; err != nil {
		return log.Err("failed to create seed settings", err)
	}

	car := Item{
		UserID:   user.ID,
		Name:     "Family Car",
		Category: ItemCategoryVehicle,
		Brand:    stringPtr("Toyota"),
		Model:    stringPtr("Camry"),
	}
	if err := db.Create(&car).Error; err != nil {
		return log.Err("failed to create seed item", err)
	}

	now := time.Now()
	tasks := []MaintenanceTask{
		{
			ItemID:             car.ID,
			UserID:             user.ID,
			Name:               "Oil Change",
			Description:        stringPtr("Change engine oil and filter"),
			IntervalDays:       90,
			NextDue:            now.AddDate(0, 0, 14),
			ReminderDaysBefore: 3,
			Priority:           TaskPriorityHigh,
			IsActive:           true,
		},
		{
			ItemID:             car.ID,
			UserID:             user.ID,
			Name:               "Tire Rotation",
			Description:        stringPtr("Rotate tires for even wear"),
			IntervalDays:       180,
			NextDue:            now.AddDate(0, 0, 60),
			ReminderDaysBefore: 3,
			Priority:           TaskPriorityMedium,
			IsActive:           true,
		},
	}

	for _, task := range tasks {
		if err := db.Create(&task).Error; err != nil {
			return log.Err("failed to create seed task", err, "task", task.Name)
		}
	}

	log.Info("Seed complete", "email", user.Email)
	return nil
}
