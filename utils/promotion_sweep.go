package utils

import (
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/go-co-op/gocron"
)

// StartPromotionSweep schedules a daily job that deactivates promotions
// whose end date has passed. Runs at local midnight in the store
// timezone so the window check and the sweep agree on day boundaries.
func StartPromotionSweep() *gocron.Scheduler {
	loc := config.StoreLocation
	if loc == nil {
		loc = time.UTC
	}

	scheduler := gocron.NewScheduler(loc)
	_, err := scheduler.Every(1).Day().At("00:00").Do(SweepExpiredPromotions)
	if err != nil {
		LogError("Failed to schedule promotion sweep: %v", err)
		return scheduler
	}
	scheduler.StartAsync()
	LogInfo("Promotion expiry sweep scheduled")
	return scheduler
}

// SweepExpiredPromotions deactivates active promotions whose end date
// is in the past.
func SweepExpiredPromotions() {
	LogInfo("SweepExpiredPromotions called")

	result := config.DB.Model(&models.Promotion{}).
		Where("is_active = ? AND end_date < ?", true, time.Now().UTC()).
		Update("is_active", false)
	if result.Error != nil {
		LogError("Promotion sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		LogInfo("Promotion sweep deactivated %d expired promotions", result.RowsAffected)
	}
}
