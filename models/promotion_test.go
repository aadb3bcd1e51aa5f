package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPromotionType(t *testing.T) {
	assert.True(t, ValidPromotionType(PromotionTypeProduct))
	assert.True(t, ValidPromotionType(PromotionTypeCategory))
	assert.True(t, ValidPromotionType(PromotionTypeStoreWide))
	assert.False(t, ValidPromotionType("flash_sale"))
	assert.False(t, ValidPromotionType(""))
}

func TestIsRunning(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	promo := Promotion{
		IsActive:  true,
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2025, 3, 20, 23, 59, 59, 0, loc),
	}

	assert.True(t, promo.IsRunning(time.Date(2025, 3, 15, 12, 0, 0, 0, loc), loc))
	assert.True(t, promo.IsRunning(promo.StartDate, loc), "window start is inclusive")
	assert.True(t, promo.IsRunning(promo.EndDate, loc), "window end is inclusive")
	assert.False(t, promo.IsRunning(time.Date(2025, 3, 9, 23, 59, 59, 0, loc), loc))
	assert.False(t, promo.IsRunning(time.Date(2025, 3, 21, 0, 0, 0, 0, loc), loc))

	promo.IsActive = false
	assert.False(t, promo.IsRunning(time.Date(2025, 3, 15, 12, 0, 0, 0, loc), loc),
		"deactivated promotions never run")
}
