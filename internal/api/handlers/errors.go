package handlers

import (
	"errors"
	"net/http"

	"macro-stress/internal/api/models"
	"macro-stress/internal/model"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: errorDetail(code, err)})
}

// scenarioError maps an error from building or running a scenario onto the
// API error envelope.
func scenarioError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: classify(err)})
}

func classify(err error) models.ErrorDetail {
	if errors.Is(err, model.ErrInvalidInputs) {
		return errorDetail("INVALID_INPUTS", err)
	}
	return errorDetail("INVALID_SCENARIO", err)
}

func errorDetail(code string, err error) models.ErrorDetail {
	d := models.ErrorDetail{Code: code, Message: err.Error()}
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		d.Details = map[string]interface{}{
			"field":  ve.Field,
			"reason": ve.Reason,
		}
	}
	return d
}
