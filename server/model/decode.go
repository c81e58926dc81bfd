package model

import (
	"github.com/gin-gonic/gin"
	json "github.com/json-iterator/go"
)

type Request interface {
	Validate() error
}

func Decode(ctx *gin.Context, req Request) error {
	if err := json.NewDecoder(ctx.Request.Body).Decode(req); err != nil {
		return err
	}
	return req.Validate()
}
