package cli

import (
	"fmt"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/user"

	"github.com/spf13/cobra"
)

func newCreateUserCmd(load ConfigLoader) *cobra.Command {
	var req user.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user, e.g. the first manager of a fresh install",
		Example: `  vactl create-user --name "Asha Rao" --email asha@example.com --password 'changeme1' --role manager
  vactl create-user --name "Ravi K" --email ravi@example.com --password 'changeme1' --role engineer --manager <manager-id>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(req.Password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			_, db, closeDB, err := openDB(load)
			if err != nil {
				return err
			}
			defer closeDB()

			created, err := user.NewService(user.NewRepository(db)).Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", created.Role, created.Email, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password (min 8 characters)")
	cmd.Flags().StringVar(&req.Role, "role", rbac.RoleEngineer, "manager, team_leader or engineer")
	cmd.Flags().StringVar(&req.ManagerID, "manager", "", "id of the user this one reports to")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
