package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/avagut/authhub/internal/conf"
	"github.com/avagut/authhub/internal/db"
	dbModel "github.com/avagut/authhub/internal/model"
	"github.com/avagut/authhub/server/model"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/zijiren233/stream"
)

var (
	ErrAuthFailed  = errors.New("auth failed")
	ErrAuthExpired = errors.New("auth expired")
)

type AuthClaims struct {
	UserID       string `json:"u"`
	TokenVersion uint32 `json:"uv"`
	jwt.RegisteredClaims
}

func authClaims(authorization string) (*AuthClaims, error) {
	t, err := jwt.ParseWithClaims(
		strings.TrimPrefix(authorization, `Bearer `),
		&AuthClaims{},
		func(*jwt.Token) (any, error) {
			return stream.StringToBytes(conf.Conf.Jwt.Secret), nil
		},
	)
	if err != nil {
		return nil, ErrAuthFailed
	}
	claims, ok := t.Claims.(*AuthClaims)
	if !ok || !t.Valid {
		return nil, ErrAuthFailed
	}
	return claims, nil
}

// AuthUser resolves the bearer token to the active principal. A stale
// token version means the session was cleared by logout.
func AuthUser(authorization string) (*dbModel.User, error) {
	claims, err := authClaims(authorization)
	if err != nil {
		return nil, err
	}
	if len(claims.UserID) != 32 {
		return nil, ErrAuthFailed
	}
	user, err := db.GetUserByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if !user.CheckTokenVersion(claims.TokenVersion) {
		return nil, ErrAuthExpired
	}
	if user.IsBanned() {
		return nil, errors.New("user is banned")
	}
	return user, nil
}

func NewAuthUserToken(user *dbModel.User) (string, error) {
	if user.IsBanned() {
		return "", errors.New("user is banned")
	}
	t, err := time.ParseDuration(conf.Conf.Jwt.Expire)
	if err != nil {
		return "", err
	}
	claims := &AuthClaims{
		UserID:       user.ID,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString(stream.StringToBytes(conf.Conf.Jwt.Secret))
}

func AuthUserMiddleware(ctx *gin.Context) {
	token, err := GetAuthorizationTokenFromContext(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, model.NewAPIErrorResp(err))
		return
	}
	user, err := AuthUser(token)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, model.NewAPIErrorResp(err))
		return
	}
	ctx.Set("user", user)
}

func AuthAdminMiddleware(ctx *gin.Context) {
	AuthUserMiddleware(ctx)
	if ctx.IsAborted() {
		return
	}
	user := GetUser(ctx)
	if !user.IsAdmin() {
		ctx.AbortWithStatusJSON(http.StatusForbidden, model.NewAPIErrorStringResp("user is not admin"))
	}
}

func AuthRootMiddleware(ctx *gin.Context) {
	AuthUserMiddleware(ctx)
	if ctx.IsAborted() {
		return
	}
	user := GetUser(ctx)
	if !user.IsRoot() {
		ctx.AbortWithStatusJSON(http.StatusForbidden, model.NewAPIErrorStringResp("user is not root"))
	}
}

func GetAuthorizationTokenFromContext(ctx *gin.Context) (string, error) {
	authorization := ctx.GetHeader("Authorization")
	if authorization != "" {
		return authorization, nil
	}
	token := ctx.Query("token")
	if token != "" {
		return token, nil
	}
	return "", errors.New("token is empty")
}

func GetUser(ctx *gin.Context) *dbModel.User {
	return ctx.MustGet("user").(*dbModel.User)
}
