package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// NewRouter builds the HTTP surface: POST /checkout plus a liveness probe,
// behind a global rate limiter.
func NewRouter(orch Processor, requestsPerSec float64, log *logrus.Entry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(rateLimit(requestsPerSec))

	h := &handler{orch: orch, log: log}
	router.POST("/checkout", h.checkout)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// rateLimit rejects requests beyond the configured sustained rate. Each
// request drives a real storefront with a full browser; bursts help nobody.
func rateLimit(requestsPerSec float64) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSec), int(requestsPerSec)+1)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "too many requests"})
			return
		}
		c.Next()
	}
}
