package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /bulletin. Reads issue an XSRF token; writes must present one.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, issueXSRF, verifyXSRF gin.HandlerFunc) {
	group := g.Group("/bulletin")

	group.GET("", issueXSRF, h.Get)

	writeGroup := group.Group("")
	writeGroup.Use(verifyXSRF)
	{
		writeGroup.POST("", h.Create)
		writeGroup.PUT("", h.Update)
		writeGroup.DELETE("", h.Delete)
	}
}
