package auth

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/redirect.html
var temp embed.FS

var redirectTemplate = template.Must(template.ParseFS(temp, "templates/redirect.html"))

type renderTokenData struct {
	Token    string
	Redirect string
}

func (h *Handlers) renderToken(ctx *gin.Context, redirect, token string) {
	err := redirectTemplate.Execute(ctx.Writer, renderTokenData{
		Token:    token,
		Redirect: redirect,
	})
	if err != nil {
		ctx.Abort()
	}
}
