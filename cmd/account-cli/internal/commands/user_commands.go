package commands

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence"
)

// InitUserCommands registers the user inspection commands
func InitUserCommands(rootCmd *cobra.Command) {
	var usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Inspect registered users",
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all users with their roles and lock state",
		RunE:  listUsers,
	}
	usersCmd.AddCommand(listCmd)
	rootCmd.AddCommand(usersCmd)
}

func listUsers(cmd *cobra.Command, _ []string) error {
	db, log, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	logins, err := persistence.NewGormLoginRepository(db, log)
	if err != nil {
		return err
	}
	loginRoles, err := persistence.NewGormLoginRoleRepository(db, log)
	if err != nil {
		return err
	}

	users, err := logins.List(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLES\tFAILED\tLOCKED")
	for _, user := range users {
		roles, err := loginRoles.RolesByEmail(cmd.Context(), user.Email)
		if err != nil {
			return err
		}
		slices.Sort(roles)
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%d\t%t\n",
			user.ID, user.Email, user.Name, user.Lastname, strings.Join(roles, ","), user.FailedLogins, user.AccountLocked)
	}
	return w.Flush()
}
