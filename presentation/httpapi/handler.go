package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"checkout_bot/domain/entities"
)

// Processor runs one checkout request end to end.
type Processor interface {
	Process(ctx context.Context, payload entities.Payload) (entities.RequestResult, error)
}

type handler struct {
	orch Processor
	log  *logrus.Entry
}

// checkout is POST /checkout: validate the payload, run the browser flow,
// return the result or an error detail.
func (h *handler) checkout(c *gin.Context) {
	var payload entities.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.orch.Process(c.Request.Context(), payload)
	if err != nil {
		h.log.Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	h.log.Infof("request completed in %dms", result.DurationMs)
	c.JSON(http.StatusOK, result)
}
