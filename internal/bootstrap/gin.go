package bootstrap

import (
	"context"

	"github.com/avagut/authhub/cmd/flags"
	"github.com/gin-gonic/gin"
)

func InitGinMode(_ context.Context) error {
	if flags.Dev {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.ForceConsoleColor()

	return nil
}
