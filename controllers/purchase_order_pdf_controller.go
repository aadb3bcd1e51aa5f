package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/models"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// buildPurchaseOrderPDF renders the order document sent to suppliers.
func buildPurchaseOrderPDF(order *models.PurchaseOrder) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Merchantry")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "42 Market Road, City, Country")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: purchasing@merchantry.local | Phone: +91-12345-67890")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "PURCHASE ORDER")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(70, 8, "Order Number: "+order.OrderNumber)
	pdf.Cell(60, 8, "Order Date: "+order.OrderDate.In(storeLocation()).Format("2006-01-02"))
	pdf.Ln(8)
	pdf.Cell(70, 8, "Status: "+order.Status)
	if !order.ExpectedDate.IsZero() {
		pdf.Cell(60, 8, "Expected: "+order.ExpectedDate.In(storeLocation()).Format("2006-01-02"))
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Supplier:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, order.Supplier.Name)
	pdf.Ln(6)
	if order.Supplier.ContactPerson != "" {
		pdf.Cell(100, 8, "Attn: "+order.Supplier.ContactPerson)
		pdf.Ln(6)
	}
	if order.Supplier.Email != "" {
		pdf.Cell(100, 8, order.Supplier.Email)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Item table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(80, 8, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.CellFormat(80, 8, item.Product.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, item.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, order.TotalAmount.StringFixed(2), "1", 1, "R", false, 0, "")

	if order.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(100, 8, "Notes:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(180, 6, order.Notes, "", "L", false)
	}

	return pdf
}

// DownloadPurchaseOrderPDF generates and returns the PDF document for an order
func DownloadPurchaseOrderPDF(c *gin.Context) {
	utils.LogInfo("DownloadPurchaseOrderPDF called")

	id := c.Param("id")
	var order models.PurchaseOrder
	if err := config.DB.Preload("Supplier").Preload("Items.Product").First(&order, id).Error; err != nil {
		utils.LogError("Purchase order not found: %s", id)
		utils.NotFound(c, "Purchase order not found")
		return
	}

	pdf := buildPurchaseOrderPDF(&order)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", order.OrderNumber))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to render PDF for order %s: %v", order.OrderNumber, err)
		c.Status(http.StatusInternalServerError)
		return
	}
	utils.LogInfo("Generated PDF for purchase order %s", order.OrderNumber)
}

// SendPurchaseOrderToSupplier emails the order document to the supplier
func SendPurchaseOrderToSupplier(c *gin.Context) {
	utils.LogInfo("SendPurchaseOrderToSupplier called")

	id := c.Param("id")
	var order models.PurchaseOrder
	if err := config.DB.Preload("Supplier").Preload("Items.Product").First(&order, id).Error; err != nil {
		utils.LogError("Purchase order not found: %s", id)
		utils.NotFound(c, "Purchase order not found")
		return
	}

	if order.Supplier.Email == "" {
		utils.LogError("Supplier %d has no email address", order.SupplierID)
		utils.BadRequest(c, "Supplier has no email address", nil)
		return
	}

	body := fmt.Sprintf(
		"<p>Please find attached purchase order <b>%s</b> dated %s.</p><p>Total amount: %s</p>",
		order.OrderNumber,
		order.OrderDate.In(storeLocation()).Format("2006-01-02"),
		order.TotalAmount.StringFixed(2),
	)
	subject := fmt.Sprintf("Purchase Order %s", order.OrderNumber)

	if err := utils.SendEmail(order.Supplier.Email, subject, body); err != nil {
		utils.LogError("Failed to email purchase order %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Failed to send purchase order", err.Error())
		return
	}

	utils.LogInfo("Emailed purchase order %s to %s", order.OrderNumber, order.Supplier.Email)
	utils.Success(c, "Purchase order sent to supplier", gin.H{
		"order_number": order.OrderNumber,
		"sent_to":      order.Supplier.Email,
	})
}
