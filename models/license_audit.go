package models

import (
	"strings"
	"time"
)

// License validation type constants
const (
	ValidationTypeStartup  = "startup"
	ValidationTypePeriodic = "periodic"
	ValidationTypeManual   = "manual"
)

// License validation result constants
const (
	ValidationResultValid    = "valid"
	ValidationResultInvalid  = "invalid"
	ValidationResultExpired  = "expired"
	ValidationResultTampered = "tampered"
	ValidationResultError    = "error"
)

// LicenseValidationAuditLog is an immutable record of a license check.
// Rows are only ever appended; there are no update or delete paths.
type LicenseValidationAuditLog struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time `json:"created_at" gorm:"index"`
	LicenseKey       string    `json:"-"`
	ValidationType   string    `json:"validation_type" gorm:"index;not null"`
	ValidationResult string    `json:"validation_result" gorm:"index;not null"`
	TamperDetected   bool      `json:"tamper_detected" gorm:"default:false"`
	ErrorMessage     string    `json:"error_message"`
}

// ValidValidationType reports whether t is a known validation type.
func ValidValidationType(t string) bool {
	switch t {
	case ValidationTypeStartup, ValidationTypePeriodic, ValidationTypeManual:
		return true
	}
	return false
}

// ValidValidationResult reports whether r is a known validation result.
func ValidValidationResult(r string) bool {
	switch r {
	case ValidationResultValid, ValidationResultInvalid, ValidationResultExpired,
		ValidationResultTampered, ValidationResultError:
		return true
	}
	return false
}

// MaskedKey returns the license key with all but the last four
// characters replaced, for display in the audit list.
func (l *LicenseValidationAuditLog) MaskedKey() string {
	if len(l.LicenseKey) <= 4 {
		return l.LicenseKey
	}
	return strings.Repeat("*", len(l.LicenseKey)-4) + l.LicenseKey[len(l.LicenseKey)-4:]
}
