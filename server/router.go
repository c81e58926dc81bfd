package server

import (
	"github.com/avagut/authhub/internal/provider/providers"
	"github.com/avagut/authhub/server/handlers"
	"github.com/avagut/authhub/server/middlewares"
	auth "github.com/avagut/authhub/server/oauth2"
	"github.com/gin-gonic/gin"
)

func Init(e *gin.Engine, registry *providers.Registry) {
	middlewares.Init(e)
	auth.Init(e, registry)
	handlers.Init(e)
}

func NewAndInit(registry *providers.Registry) *gin.Engine {
	e := gin.New()
	Init(e, registry)
	return e
}
