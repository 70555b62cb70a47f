package cmd

import (
	"fmt"

	"github.com/ramses2099/storeapiv2/models"
	"github.com/spf13/cobra"
)

var newUser models.UserCreate

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user",
	Long: `Create a user directly through the user service, without going through
the HTTP API. Useful for seeding the first user on a fresh database.

Example:
  store create-user --username admin --email admin@example.com \
    --password 's3cret-pass' --firstname Ada --lastname Admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		user, svcErr := a.users.CreateUser(ctx, &newUser)
		if svcErr != nil {
			return fmt.Errorf("create user: %s", svcErr.Message)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", user.ID, user.Username)
		return nil
	},
}

func init() {
	f := createUserCmd.Flags()
	f.StringVar(&newUser.Username, "username", "", "Username (required)")
	f.StringVar(&newUser.Email, "email", "", "Email address (required)")
	f.StringVar(&newUser.Password, "password", "", "Password, at least 8 characters (required)")
	f.StringVar(&newUser.FirstName, "firstname", "", "First name (required)")
	f.StringVar(&newUser.LastName, "lastname", "", "Last name (required)")
	for _, name := range []string{"username", "email", "password", "firstname", "lastname"} {
		_ = createUserCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(createUserCmd)
}
