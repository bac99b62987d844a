package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// home godoc
// @Summary Service banner
// @Description Returns the service name, useful as a liveness probe target
// @Tags home
// @Produce plain
// @Success 200 {string} string "payables_app"
// @Router / [get]
func home(c *gin.Context) {
	c.String(http.StatusOK, "payables_app")
}
