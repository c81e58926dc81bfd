package cmd

import (
	"github.com/avagut/authhub/cmd/user"
)

func init() {
	RootCmd.AddCommand(user.UserCmd)
}
