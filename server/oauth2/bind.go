package auth

import (
	"net/http"

	"github.com/avagut/authhub/internal/db"
	"github.com/avagut/authhub/internal/provider"
	"github.com/avagut/authhub/server/middlewares"
	"github.com/avagut/authhub/server/model"
	"github.com/avagut/authhub/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// POST /oauth2/bind/:type
func (h *Handlers) BindAPI(ctx *gin.Context) {
	user := middlewares.GetUser(ctx)

	pi, err := h.registry.Get(provider.OAuth2Provider(ctx.Param("type")))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	req := model.OAuth2Req{}
	if err := model.Decode(ctx, &req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	state := utils.RandString(16)
	url, err := pi.NewAuthURL(ctx, state)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}
	h.states.Store(state, stateMeta{
		Bind:     true,
		UserID:   user.ID,
		Redirect: req.Redirect,
	}, stateExpire)

	ctx.JSON(http.StatusOK, model.NewAPIDataResp(gin.H{
		"url": url,
	}))
}

// POST /oauth2/unbind/:type
func (h *Handlers) UnbindAPI(ctx *gin.Context) {
	user := middlewares.GetUser(ctx)
	log := middlewares.GetLogger(ctx)

	pi, err := h.registry.Get(provider.OAuth2Provider(ctx.Param("type")))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	if err := db.UnbindCredential(user.ID, pi.Provider()); err != nil {
		log.Errorf("oauth2: unbind %s: %v", pi.Provider(), err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindCallback attaches the provider identity to the already
// authenticated user instead of reconciling a login.
func (h *Handlers) bindCallback(
	ctx *gin.Context,
	pi provider.Interface,
	ui *provider.UserInfo,
	tk *oauth2.Token,
	meta stateMeta,
) (token string, ok bool) {
	log := middlewares.GetLogger(ctx)

	if ui.ProviderUserID == "" {
		ctx.AbortWithStatusJSON(
			http.StatusBadRequest,
			model.NewAPIErrorStringResp("invalid oauth2 provider user id"),
		)
		return
	}

	user, err := db.GetUserByID(meta.UserID)
	if err != nil {
		log.Errorf("oauth2: load user to bind: %v", err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	if err := db.BindCredential(user.ID, pi.Provider(), ui.ProviderUserID, tk); err != nil {
		log.Errorf("oauth2: bind %s to %s: %v", pi.Provider(), user.Username, err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	token, err = middlewares.NewAuthUserToken(user)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, model.NewAPIErrorResp(err))
		return
	}
	log.Infof("oauth2: %s bound %s", user.Username, pi.Provider())
	return token, true
}
