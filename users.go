package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the staff roster",
	}
	cmd.AddCommand(newUserAddCmd(a), newUserRmCmd(a), newUserLsCmd(a))
	return cmd
}

func newUserAddCmd(a *app) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add <name> <email>",
		Short: "Add a user to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.session.CreateUser(args[0], args[1], role)
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}
			fmt.Printf("Added %s <%s> (%s) as %s\n", u.Name, u.Email, u.Role, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role (defaults to Staff)")
	return cmd
}

func newUserRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <user-id>",
		Short: "Remove a user and purge it from all attendee lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.DeleteUser(args[0]); err != nil {
				return err
			}
			return a.save()
		},
	}
}

func newUserLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(a.session.Users) == 0 {
				fmt.Println("No users")
				return nil
			}
			for _, u := range a.session.Users {
				fmt.Printf("%s  %s <%s> (%s)\n", u.ID, u.Name, u.Email, u.Role)
			}
			return nil
		},
	}
}
