package auth

import (
	"github.com/avagut/authhub/internal/provider/providers"
	"github.com/avagut/authhub/server/middlewares"
	"github.com/gin-gonic/gin"
)

func Init(e *gin.Engine, registry *providers.Registry) {
	h := NewHandlers(registry)
	{
		oauth2 := e.Group("/oauth2")
		needAuthOauth2 := oauth2.Group("")
		needAuthOauth2.Use(middlewares.AuthUserMiddleware)

		oauth2.GET("/enabled", h.OAuth2EnabledAPI)

		oauth2.GET("/login/:type", h.OAuth2)

		oauth2.POST("/login/:type", h.OAuth2API)

		oauth2.GET("/callback/:type", h.OAuth2Callback)

		oauth2.POST("/callback/:type", h.OAuth2CallbackAPI)

		needAuthOauth2.POST("/bind/:type", h.BindAPI)

		needAuthOauth2.POST("/unbind/:type", h.UnbindAPI)
	}
}
