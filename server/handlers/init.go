package handlers

import (
	"github.com/avagut/authhub/server/middlewares"
	"github.com/gin-gonic/gin"
)

func Init(e *gin.Engine) {
	{
		api := e.Group("/api")

		needAuthUser := api.Group("/user")
		needAuthUser.Use(middlewares.AuthUserMiddleware)

		needAuthUser.GET("/me", Me)

		needAuthUser.POST("/logout", Logout)

		needAuthUser.GET("/credentials", Credentials)

		admin := api.Group("/admin")
		admin.Use(middlewares.AuthAdminMiddleware)

		admin.GET("/users", AdminUsers)

		admin.POST("/user/role", AdminUserRole)
	}
}
