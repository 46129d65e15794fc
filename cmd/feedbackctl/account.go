package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and store the session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "account email", Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "account password", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			user, err := e.account.Login(ctx, cmd.String("email"), cmd.String("password"))
			if err != nil {
				return friendly(err)
			}
			fmt.Printf("Logged in as %s <%s> (%s)\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "clear the stored session",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.account.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the logged-in user",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			user, err := e.currentUser()
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
}

func forgotPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:  "forgot-password",
		Usage: "request a password reset link",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "account email", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.account.ForgotPassword(ctx, cmd.String("email")); err != nil {
				return friendly(err)
			}
			fmt.Println("If that email exists, you will receive a reset link.")
			return nil
		},
	}
}

func resetPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset-password",
		Usage: "set a new password using a reset link's id and token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user-id", Usage: "user id from the reset link", Required: true},
			&cli.StringFlag{Name: "token", Usage: "token from the reset link", Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "new password", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.account.ResetPassword(ctx, cmd.String("user-id"), cmd.String("token"), cmd.String("password")); err != nil {
				return friendly(err)
			}
			fmt.Println("Password reset, please log in.")
			return nil
		},
	}
}
