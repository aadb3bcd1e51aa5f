package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// licenseAuditQuery applies the audit list filters: validation type,
// result, tamper flag, and a day-snapped date range.
func licenseAuditQuery(c *gin.Context) *gorm.DB {
	query := config.DB.Model(&models.LicenseValidationAuditLog{})
	if validationType := c.Query("validation_type"); validationType != "" {
		query = query.Where("validation_type = ?", validationType)
	}
	if result := c.Query("validation_result"); result != "" {
		query = query.Where("validation_result = ?", result)
	}
	if tampered := c.Query("tamper_detected"); tampered == "true" {
		query = query.Where("tamper_detected = ?", true)
	} else if tampered == "false" {
		query = query.Where("tamper_detected = ?", false)
	}
	from, to := utils.DayRangeToUTC(c.Query("start_date"), c.Query("end_date"))
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}
	return query
}

// ListLicenseAuditLogs returns a paged, filtered view of the license
// validation audit trail. The trail is append-only; there are no
// mutation endpoints.
func ListLicenseAuditLogs(c *gin.Context) {
	utils.LogInfo("ListLicenseAuditLogs called")

	pagination := utils.NewPagination(c)
	query := licenseAuditQuery(c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count audit logs: %v", err)
		utils.InternalServerError(c, "Failed to fetch audit logs", err.Error())
		return
	}
	pagination.SetTotal(total)

	var logs []models.LicenseValidationAuditLog
	if err := query.Order("created_at DESC, id DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&logs).Error; err != nil {
		utils.LogError("Failed to fetch audit logs: %v", err)
		utils.InternalServerError(c, "Failed to fetch audit logs", err.Error())
		return
	}

	formatted := make([]gin.H, 0, len(logs))
	for i := range logs {
		formatted = append(formatted, formatAuditLog(&logs[i]))
	}

	utils.LogInfo("Successfully retrieved %d audit logs", len(formatted))
	utils.SuccessWithPagination(c, "Audit logs retrieved successfully", gin.H{
		"logs": formatted,
	}, total, pagination.Page, pagination.Limit)
}

// ExportLicenseAuditExcel downloads the filtered audit trail as an
// Excel workbook
func ExportLicenseAuditExcel(c *gin.Context) {
	utils.LogInfo("ExportLicenseAuditExcel called")

	var logs []models.LicenseValidationAuditLog
	if err := licenseAuditQuery(c).Order("created_at DESC, id DESC").Find(&logs).Error; err != nil {
		utils.LogError("Failed to fetch audit logs for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch audit logs", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("License Audit")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	headers := []string{"Timestamp", "License Key", "Type", "Result", "Tamper Detected", "Error"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for i := range logs {
		row := sheet.AddRow()
		row.AddCell().SetString(logs[i].CreatedAt.In(storeLocation()).Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(logs[i].MaskedKey())
		row.AddCell().SetString(logs[i].ValidationType)
		row.AddCell().SetString(logs[i].ValidationResult)
		row.AddCell().SetBool(logs[i].TamperDetected)
		row.AddCell().SetString(logs[i].ErrorMessage)
	}

	filename := fmt.Sprintf("license-audit-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	utils.LogInfo("Exported %d audit logs to Excel", len(logs))
}

// RecordLicenseValidation appends a license check to the audit trail.
// Called by the startup and periodic license checks, never via HTTP.
func RecordLicenseValidation(licenseKey, validationType, result string, tamperDetected bool, errorMessage string) error {
	if !models.ValidValidationType(validationType) || !models.ValidValidationResult(result) {
		return fmt.Errorf("invalid audit record: type=%s result=%s", validationType, result)
	}
	entry := models.LicenseValidationAuditLog{
		LicenseKey:       licenseKey,
		ValidationType:   validationType,
		ValidationResult: result,
		TamperDetected:   tamperDetected,
		ErrorMessage:     errorMessage,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.LogError("Failed to record license validation: %v", err)
		return err
	}
	return nil
}

// formatAuditLog renders an audit entry with the license key masked.
func formatAuditLog(l *models.LicenseValidationAuditLog) gin.H {
	return gin.H{
		"id":                l.ID,
		"timestamp":         l.CreatedAt.UTC().Format(time.RFC3339),
		"license_key":       l.MaskedKey(),
		"validation_type":   l.ValidationType,
		"validation_result": l.ValidationResult,
		"tamper_detected":   l.TamperDetected,
		"error_message":     l.ErrorMessage,
	}
}
