package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/logger"
	"github.com/mariam168/smart-shop-sub001/spreadsheet"
	"github.com/mariam168/smart-shop-sub001/store"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// ImportProductsFromExcel creates or updates products from an uploaded
// workbook. Rows with an ID that exists are updated, all others created.
func ImportProductsFromExcel(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		rows, skipped, err := spreadsheet.ParseProducts(xlFile)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		createdCount, updatedCount := 0, 0
		for _, row := range rows {
			p := row.Product
			if !p.ID.IsZero() {
				existing, err := products.FindByID(ctx, p.ID)
				switch {
				case err == nil:
					p.CreatedAt = existing.CreatedAt
					if len(p.Variants) == 0 {
						p.Variants = existing.Variants
					}
					if err := products.Update(ctx, &p); err != nil {
						skipped = append(skipped, spreadsheet.Skipped{Line: row.Line, Reason: "update failed"})
						logger.From(c).Warn("excel import update failed", zap.Int("line", row.Line), zap.Error(err))
						continue
					}
					updatedCount++
					continue
				case !errors.Is(err, store.ErrNotFound):
					skipped = append(skipped, spreadsheet.Skipped{Line: row.Line, Reason: "lookup failed"})
					continue
				}
			}
			if err := products.Create(ctx, &p); err != nil {
				skipped = append(skipped, spreadsheet.Skipped{Line: row.Line, Reason: "create failed"})
				logger.From(c).Warn("excel import create failed", zap.Int("line", row.Line), zap.Error(err))
				continue
			}
			createdCount++
		}

		if skipped == nil {
			skipped = []spreadsheet.Skipped{}
		}
		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": len(skipped),
			"skipped":       skipped,
		})
	}
}
