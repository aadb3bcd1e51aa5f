package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskedKey(t *testing.T) {
	log := LicenseValidationAuditLog{LicenseKey: "ABCD-EFGH-IJKL-MNOP"}
	assert.Equal(t, "***************MNOP", log.MaskedKey())

	log.LicenseKey = "MNOP"
	assert.Equal(t, "MNOP", log.MaskedKey(), "short keys are returned unmasked")

	log.LicenseKey = ""
	assert.Equal(t, "", log.MaskedKey())
}

func TestValidValidationTypeAndResult(t *testing.T) {
	assert.True(t, ValidValidationType(ValidationTypeStartup))
	assert.True(t, ValidValidationType(ValidationTypePeriodic))
	assert.True(t, ValidValidationType(ValidationTypeManual))
	assert.False(t, ValidValidationType("weekly"))

	assert.True(t, ValidValidationResult(ValidationResultValid))
	assert.True(t, ValidValidationResult(ValidationResultTampered))
	assert.False(t, ValidValidationResult("ok"))
}
