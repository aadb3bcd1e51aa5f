package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDiscountValue(t *testing.T) {
	assert.NoError(t, ValidateDiscountValue("percentage", 10))
	assert.NoError(t, ValidateDiscountValue("percentage", 100))
	assert.NoError(t, ValidateDiscountValue("fixed", 250))

	err := ValidateDiscountValue("percentage", 150)
	assert.EqualError(t, err, "must be between 0 and 100")
	assert.EqualError(t, ValidateDiscountValue("percentage", 0), "must be between 0 and 100")
	assert.EqualError(t, ValidateDiscountValue("fixed", -1), "must be greater than 0")
	assert.Error(t, ValidateDiscountValue("bogus", 10))
}

func TestValidateDateOrder(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateDateOrder(start, start.AddDate(0, 0, 7)))
	assert.NoError(t, ValidateDateOrder(start, start), "same instant is allowed")
	assert.EqualError(t, ValidateDateOrder(start, start.Add(-time.Hour)),
		"end date must not precede start date")
}

func TestValidateMutualExclusion(t *testing.T) {
	productID := uint(1)
	categoryID := uint(2)

	assert.NoError(t, ValidateMutualExclusion(&productID, nil, "product_id", "category_id"))
	assert.NoError(t, ValidateMutualExclusion(nil, &categoryID, "product_id", "category_id"))
	assert.NoError(t, ValidateMutualExclusion(nil, nil, "product_id", "category_id"))
	assert.EqualError(t,
		ValidateMutualExclusion(&productID, &categoryID, "product_id", "category_id"),
		"product_id and category_id cannot both be set")
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(1))
	assert.Error(t, ValidateQuantity(0))
	assert.Error(t, ValidateQuantity(-5))
}

func TestValidateEmail(t *testing.T) {
	valid, _ := ValidateEmail("buyer@example.com")
	assert.True(t, valid)

	valid, msg := ValidateEmail("not-an-email")
	assert.False(t, valid)
	assert.NotEmpty(t, msg)
}

func TestFieldValidationErrorsError(t *testing.T) {
	errs := FieldValidationErrors{
		{Field: "start_date", Message: "required"},
		{Field: "end_date", Message: "must not precede start date"},
	}
	assert.Equal(t, "start_date: required; end_date: must not precede start date", errs.Error())
}
