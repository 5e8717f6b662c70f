package handlers

import (
	"net/http"

	"macro-stress/internal/api/models"
	"macro-stress/internal/model"
	"macro-stress/internal/simulate"

	"github.com/gin-gonic/gin"
)

// ListCalibration handles GET /api/v1/calibration
func ListCalibration(c *gin.Context) {
	params := model.CalibrationParams()
	out := make([]models.ParameterInfo, len(params))
	for i, p := range params {
		out[i] = models.ParameterInfo{
			Name:        p.Name,
			Description: p.Description,
			Default:     p.Default,
		}
	}
	c.JSON(http.StatusOK, gin.H{"parameters": out})
}

// ListColumns handles GET /api/v1/columns
func ListColumns(c *gin.Context) {
	cols := simulate.ColumnCatalog()
	out := make([]models.ColumnInfo, len(cols))
	for i, col := range cols {
		out[i] = models.ColumnInfo{
			Name:        col.Name,
			Description: col.Description,
			Units:       col.Units,
		}
	}
	c.JSON(http.StatusOK, gin.H{"columns": out})
}
