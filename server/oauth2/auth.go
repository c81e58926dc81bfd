package auth

import (
	"fmt"
	"net/http"

	"github.com/avagut/authhub/internal/account"
	"github.com/avagut/authhub/internal/provider"
	"github.com/avagut/authhub/server/middlewares"
	"github.com/avagut/authhub/server/model"
	"github.com/avagut/authhub/utils"
	"github.com/gin-gonic/gin"
)

// GET /oauth2/login/:type
func (h *Handlers) OAuth2(ctx *gin.Context) {
	pi, err := h.registry.Get(provider.OAuth2Provider(ctx.Param("type")))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	state := utils.RandString(16)
	url, err := pi.NewAuthURL(ctx, state)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}
	h.states.Store(state, stateMeta{Redirect: ctx.Query("redirect")}, stateExpire)

	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// POST /oauth2/login/:type
func (h *Handlers) OAuth2API(ctx *gin.Context) {
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
	h.states.Store(state, stateMeta{Redirect: req.Redirect}, stateExpire)

	ctx.JSON(http.StatusOK, model.NewAPIDataResp(gin.H{
		"url": url,
	}))
}

// GET /oauth2/callback/:type
func (h *Handlers) OAuth2Callback(ctx *gin.Context) {
	req := model.OAuth2CallbackReq{
		Code:  ctx.Query("code"),
		State: ctx.Query("state"),
	}
	if err := req.Validate(); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	token, meta, ok := h.handleCallback(ctx, &req)
	if !ok {
		return
	}

	redirect := meta.Redirect
	if redirect == "" {
		redirect = "/"
	}
	h.renderToken(ctx, redirect, token)
}

// POST /oauth2/callback/:type
func (h *Handlers) OAuth2CallbackAPI(ctx *gin.Context) {
	req := model.OAuth2CallbackReq{}
	if err := model.Decode(ctx, &req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	token, meta, ok := h.handleCallback(ctx, &req)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, model.NewAPIDataResp(gin.H{
		"token":    token,
		"redirect": meta.Redirect,
		"message":  fmt.Sprintf("successfully signed in with %s", ctx.Param("type")),
	}))
}

// handleCallback runs the shared callback tail: state check, code
// exchange, profile fetch, then either account reconciliation or
// credential binding. It writes the error response itself and reports
// success through ok.
func (h *Handlers) handleCallback(ctx *gin.Context, req *model.OAuth2CallbackReq) (token string, meta stateMeta, ok bool) {
	log := middlewares.GetLogger(ctx)
	p := provider.OAuth2Provider(ctx.Param("type"))

	pi, err := h.registry.Get(p)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	entry, loaded := h.states.LoadAndDelete(req.State)
	if !loaded {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(model.ErrInvalidOAuth2State))
		return
	}
	meta = entry.Value()

	tk, err := pi.GetToken(ctx, req.Code)
	if err != nil || tk.AccessToken == "" {
		log.Errorf("oauth2: failed to log in with %s: %v", p, err)
		ctx.AbortWithStatusJSON(
			http.StatusBadRequest,
			model.NewAPIErrorStringResp(fmt.Sprintf("failed to log in with %s", p)),
		)
		return
	}

	ui, err := pi.GetUserInfo(ctx, tk)
	if err != nil {
		log.Errorf("oauth2: failed to fetch user info from %s: %v", p, err)
		ctx.AbortWithStatusJSON(
			http.StatusBadRequest,
			model.NewAPIErrorStringResp(fmt.Sprintf("failed to fetch user info from %s", p)),
		)
		return
	}

	if meta.Bind {
		token, ok = h.bindCallback(ctx, pi, ui, tk, meta)
		return
	}

	user, err := account.Reconcile(p, ui, tk)
	if err != nil {
		log.Errorf("oauth2: reconcile %s identity: %v", p, err)
		status := http.StatusInternalServerError
		if account.IsProfileError(err) {
			status = http.StatusBadRequest
		}
		ctx.AbortWithStatusJSON(status, model.NewAPIErrorResp(err))
		return
	}

	token, err = middlewares.NewAuthUserToken(user)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, model.NewAPIErrorResp(err))
		return
	}
	log.Infof("oauth2: %s signed in with %s", user.Username, p)
	return token, meta, true
}
