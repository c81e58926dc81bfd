package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avagut/authhub/internal/db"
	dbModel "github.com/avagut/authhub/internal/model"
	"github.com/avagut/authhub/server/middlewares"
	"github.com/avagut/authhub/server/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AdminUsers(ctx *gin.Context) {
	page, pageSize, err := GetPageAndPageSize(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	scopes := []func(*gorm.DB) *gorm.DB{
		db.Paginate(page, pageSize),
		db.OrderByCreatedAtDesc,
	}

	var users []*dbModel.User
	if search := ctx.Query("search"); search != "" {
		users, err = db.GetUserByIDOrUsernameLike(search, scopes...)
	} else {
		users, err = db.AllUsers(scopes...)
	}
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, model.NewAPIErrorResp(err))
		return
	}

	total, err := db.AllUserCount()
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, model.NewAPIErrorResp(err))
		return
	}

	resp := make([]*model.UserInfoResp, len(users))
	for i, u := range users {
		resp[i] = &model.UserInfoResp{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.UnixMilli(),
		}
	}

	ctx.JSON(http.StatusOK, model.NewAPIDataResp(gin.H{
		"total": total,
		"list":  resp,
	}))
}

// AdminUserRole changes a user's role. Only root may grant or revoke
// admin.
func AdminUserRole(ctx *gin.Context) {
	admin := middlewares.GetUser(ctx)

	req := model.AdminUserRoleReq{}
	if err := model.Decode(ctx, &req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, model.NewAPIErrorResp(err))
		return
	}

	user, err := db.GetUserByID(req.ID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, model.NewAPIErrorResp(err))
		return
	}

	if user.IsRoot() {
		ctx.AbortWithStatusJSON(http.StatusForbidden, model.NewAPIErrorStringResp("cannot change root role"))
		return
	}
	if (user.IsAdmin() || req.Role == dbModel.RoleAdmin) && !admin.IsRoot() {
		ctx.AbortWithStatusJSON(http.StatusForbidden, model.NewAPIErrorStringResp("only root can change admin role"))
		return
	}

	if err := db.SetUserRole(user.ID, req.Role); err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, model.NewAPIErrorResp(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func GetPageAndPageSize(ctx *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		return 0, 0, errors.New("invalid page")
	}
	pageSize, err := strconv.Atoi(ctx.DefaultQuery("max", "10"))
	if err != nil || pageSize <= 0 || pageSize > 100 {
		return 0, 0, errors.New("invalid max")
	}
	return page, pageSize, nil
}
