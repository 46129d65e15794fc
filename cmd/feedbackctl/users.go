package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Jasvanth78/feedbackforntend/internal/model"
)

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "manage user accounts and roles (admin only)",
		Commands: []*cli.Command{
			usersListCommand(),
			usersSetRoleCommand("promote", "promote a user to ADMIN", model.RoleAdmin),
			usersSetRoleCommand("demote", "demote an admin to USER", model.RoleUser),
			usersDeleteCommand(),
		},
	}
}

func usersListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list all users with their response counts",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			self, err := e.currentUser()
			if err != nil {
				return err
			}
			users, err := e.users.List(ctx)
			if err != nil {
				return friendly(err)
			}
			printUsers(os.Stdout, users, self.ID)
			return nil
		},
	}
}

func usersSetRoleCommand(name, usage string, role model.Role) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<user-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip confirmation"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			userID := cmd.Args().First()
			if userID == "" {
				return fmt.Errorf("usage: feedbackctl users %s <user-id>", name)
			}
			if !cmd.Bool("yes") && !confirm(fmt.Sprintf("Set role of %s to %s?", userID, role)) {
				fmt.Println("Cancelled.")
				return nil
			}

			e, err := newEnv()
			if err != nil {
				return err
			}
			self, err := e.currentUser()
			if err != nil {
				return err
			}
			if err := e.users.SetRole(ctx, userID, role); err != nil {
				return friendly(err)
			}
			fmt.Printf("Role of %s set to %s.\n\n", userID, role)

			users, err := e.users.List(ctx)
			if err != nil {
				return friendly(err)
			}
			printUsers(os.Stdout, users, self.ID)
			return nil
		},
	}
}

func usersDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete a user and everything they submitted",
		ArgsUsage: "<user-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip confirmation"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			userID := cmd.Args().First()
			if userID == "" {
				return fmt.Errorf("usage: feedbackctl users delete <user-id>")
			}
			if !cmd.Bool("yes") && !confirm("Delete this user? This action cannot be undone.") {
				fmt.Println("Cancelled.")
				return nil
			}

			e, err := newEnv()
			if err != nil {
				return err
			}
			self, err := e.currentUser()
			if err != nil {
				return err
			}
			if err := e.users.Delete(ctx, userID); err != nil {
				return friendly(err)
			}
			fmt.Println("User deleted.")
			fmt.Println()

			users, err := e.users.List(ctx)
			if err != nil {
				return friendly(err)
			}
			printUsers(os.Stdout, users, self.ID)
			return nil
		},
	}
}
