package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, issueXSRF, verifyXSRF gin.HandlerFunc) {
	group := g.Group("/access-level")

	group.GET("", issueXSRF, h.Get)

	writeGroup := group.Group("")
	writeGroup.Use(verifyXSRF)
	{
		writeGroup.POST("", h.Create)
		writeGroup.PUT("", h.Update)
		writeGroup.DELETE("", h.Delete)
	}
}
