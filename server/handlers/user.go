package handlers

import (
	"net/http"

	"github.com/avagut/authhub/internal/db"
	"github.com/avagut/authhub/server/middlewares"
	"github.com/avagut/authhub/server/model"
	"github.com/gin-gonic/gin"
)

func Me(ctx *gin.Context) {
	user := middlewares.GetUser(ctx)

	ctx.JSON(http.StatusOK, model.NewAPIDataResp(&model.UserInfoResp{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.UnixMilli(),
	}))
}

// Logout bumps the token version, every outstanding token for the user
// stops validating.
func Logout(ctx *gin.Context) {
	user := middlewares.GetUser(ctx)

	if err := db.IncrUserTokenVersion(user.ID); err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, model.NewAPIErrorResp(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func Credentials(ctx *gin.Context) {
	user := middlewares.GetUser(ctx)

	credentials, err := db.GetCredentialsByUserID(user.ID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, model.NewAPIErrorResp(err))
		return
	}

	resp := make([]*model.CredentialResp, len(credentials))
	for i, c := range credentials {
		resp[i] = &model.CredentialResp{
			Provider:       c.Provider,
			ProviderUserID: c.ProviderUserID,
			CreatedAt:      c.CreatedAt.UnixMilli(),
		}
	}

	ctx.JSON(http.StatusOK, model.NewAPIDataResp(resp))
}
