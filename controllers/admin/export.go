package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kusk24/restyle-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/export/sales (API key)
// Streams every sale as an .xlsx download for manual payment reconciliation.
func ExportSalesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sales []models.Sale
		if err := db.Preload("Items").Order("created_at DESC").Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sales")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderRef", "UserID", "CustomerName", "CustomerEmail",
			"CustomerPhone", "Items", "Total", "Status", "PaymentStatus",
			"PaymentProof", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, s := range sales {
			row := sheet.AddRow()

			row.AddCell().SetValue(int(s.ID))
			row.AddCell().SetValue(s.OrderRef)
			row.AddCell().SetValue(s.UserID)
			row.AddCell().SetValue(s.CustomerName)
			row.AddCell().SetValue(s.CustomerEmail)
			row.AddCell().SetValue(s.CustomerPhone)
			row.AddCell().SetValue(strconv.Itoa(len(s.Items)))
			row.AddCell().SetValue(s.Total)
			row.AddCell().SetValue(string(s.Status))
			row.AddCell().SetValue(string(s.PaymentStatus))
			row.AddCell().SetValue(s.PaymentProof)
			row.AddCell().SetValue(s.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=sales.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
