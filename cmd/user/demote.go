package user

import (
	"errors"
	"fmt"

	"github.com/avagut/authhub/internal/bootstrap"
	"github.com/avagut/authhub/internal/db"
	"github.com/avagut/authhub/internal/model"
	"github.com/spf13/cobra"
)

var DemoteCmd = &cobra.Command{
	Use:   "demote",
	Short: "demote admin to user with user id",
	Long:  `demote admin to user with user id`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return bootstrap.New(bootstrap.WithContext(cmd.Context())).Add(
			bootstrap.InitDiscardLog,
			bootstrap.InitConfig,
			bootstrap.InitDatabase,
		).Run()
	},
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("missing user id")
		}
		u, err := db.GetUserByID(args[0])
		if err != nil {
			fmt.Printf("get user failed: %s\n", err)
			return nil
		}
		err = db.SetUserRole(u.ID, model.RoleUser)
		if err != nil {
			fmt.Printf("demote user failed: %s\n", err)
			return nil
		}
		fmt.Printf("demote user success: %s\n", u.Username)
		return nil
	},
}

func init() {
	UserCmd.AddCommand(DemoteCmd)
}
