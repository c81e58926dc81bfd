package auth

import (
	"net/http"

	"github.com/avagut/authhub/server/model"
	"github.com/gin-gonic/gin"
)

// GET /oauth2/enabled
func (h *Handlers) OAuth2EnabledAPI(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, model.NewAPIDataResp(gin.H{
		"enabled": h.registry.Enabled(),
	}))
}
