package handlers

import (
	"net/http"

	"cazpay/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last Mongo/Redis health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": healthLabel(code), "services": status})
}

func healthLabel(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
