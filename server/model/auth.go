package model

import (
	"errors"
)

var (
	ErrInvalidOAuth2Code  = errors.New("invalid oauth2 code")
	ErrInvalidOAuth2State = errors.New("invalid oauth2 state")
)

type OAuth2CallbackReq struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

func (o *OAuth2CallbackReq) Validate() error {
	if o.Code == "" {
		return ErrInvalidOAuth2Code
	}
	if o.State == "" {
		return ErrInvalidOAuth2State
	}
	return nil
}

type OAuth2Req struct {
	Redirect string `json:"redirect"`
}

func (o *OAuth2Req) Validate() error {
	return nil
}
