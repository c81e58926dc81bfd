package user

import (
	"errors"
	"fmt"

	"github.com/avagut/authhub/internal/bootstrap"
	"github.com/avagut/authhub/internal/db"
	"github.com/spf13/cobra"
)

var UnbanCmd = &cobra.Command{
	Use:   "unban",
	Short: "unban user with user id",
	Long:  `unban user with user id`,
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
		err = db.UnbanUser(u.ID)
		if err != nil {
			fmt.Printf("unban user failed: %s\n", err)
			return nil
		}
		fmt.Printf("unban user success: %s\n", u.Username)
		return nil
	},
}

func init() {
	UserCmd.AddCommand(UnbanCmd)
}
