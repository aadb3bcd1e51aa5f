package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportPurchaseOrdersExcel downloads the filtered purchase order list
// as an Excel workbook. Filters match ListPurchaseOrders.
func ExportPurchaseOrdersExcel(c *gin.Context) {
	utils.LogInfo("ExportPurchaseOrdersExcel called")

	query := purchaseOrderListQuery(c, c.Query("search"))

	var orders []models.PurchaseOrder
	if err := query.Preload("Supplier").Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch purchase orders for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch purchase orders", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Purchase Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("MERCHANTRY - Purchase Orders")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Exported: " + time.Now().In(storeLocation()).Format("2006-01-02 15:04:05"))
	sheet.AddRow() // spacing

	headers := []string{"Order Number", "Supplier", "Order Date", "Expected Date", "Received Date", "Status", "Items", "Total"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(order.OrderNumber)
		row.AddCell().SetString(order.Supplier.Name)
		row.AddCell().SetString(order.OrderDate.In(storeLocation()).Format("2006-01-02"))
		if order.ExpectedDate.IsZero() {
			row.AddCell().SetString("")
		} else {
			row.AddCell().SetString(order.ExpectedDate.In(storeLocation()).Format("2006-01-02"))
		}
		if order.ReceivedDate == nil {
			row.AddCell().SetString("")
		} else {
			row.AddCell().SetString(order.ReceivedDate.In(storeLocation()).Format("2006-01-02"))
		}
		row.AddCell().SetString(order.Status)
		row.AddCell().SetInt(len(order.Items))
		row.AddCell().SetString(order.TotalAmount.StringFixed(2))
	}

	filename := fmt.Sprintf("purchase-orders-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	utils.LogInfo("Exported %d purchase orders to Excel", len(orders))
}
