package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/logger"
	"github.com/mariam168/smart-shop-sub001/response"
	"github.com/mariam168/smart-shop-sub001/spreadsheet"
	"go.uber.org/zap"
)

// ExportProductsToExcel downloads the whole catalog as products.xlsx.
func ExportProductsToExcel(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.All(c.Request.Context())
		if err != nil {
			response.Error(c, err, "Failed to fetch products")
			return
		}

		file, err := spreadsheet.ProductsWorkbook(all)
		if err != nil {
			response.Error(c, err, "Failed to create Excel sheet")
			return
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			logger.From(c).Error("write excel response", zap.Error(err))
		}
	}
}
