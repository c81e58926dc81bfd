package model

import (
	"time"
)

type APIResp struct {
	Time  int64  `json:"time"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func (ar *APIResp) SetError(err error) {
	ar.Error = err.Error()
}

func (ar *APIResp) SetData(data any) {
	ar.Data = data
}

func NewAPIErrorResp(err error) *APIResp {
	return &APIResp{
		Time:  time.Now().UnixMicro(),
		Error: err.Error(),
	}
}

func NewAPIErrorStringResp(err string) *APIResp {
	return &APIResp{
		Time:  time.Now().UnixMicro(),
		Error: err,
	}
}

func NewAPIDataResp(data any) *APIResp {
	return &APIResp{
		Time: time.Now().UnixMicro(),
		Data: data,
	}
}
