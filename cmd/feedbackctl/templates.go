package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "list, create and delete feedback templates",
		Commands: []*cli.Command{
			templatesListCommand(),
			templatesCreateCommand(),
			templatesDeleteCommand(),
		},
	}
}

func templatesListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list the templates visible to the current role",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			user, err := e.currentUser()
			if err != nil {
				return err
			}
			templates, err := e.templates.ListForRole(ctx, user.Role)
			if err != nil {
				return friendly(err)
			}
			printTemplates(os.Stdout, templates)
			return nil
		},
	}
}

func templatesCreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "create a template (admin only)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "template title", Required: true},
			&cli.StringSliceFlag{Name: "question", Aliases: []string{"q"}, Usage: "sub-question, repeatable"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			user, err := e.currentUser()
			if err != nil {
				return err
			}
			created, err := e.templates.Create(ctx, cmd.String("title"), cmd.StringSlice("question"))
			if err != nil {
				return friendly(err)
			}
			fmt.Printf("Created template %s (%q).\n\n", created.ID, created.Title)

			// The server is the source of truth; show the fresh list.
			templates, err := e.templates.ListForRole(ctx, user.Role)
			if err != nil {
				return friendly(err)
			}
			printTemplates(os.Stdout, templates)
			return nil
		},
	}
}

func templatesDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete a template and its responses (admin only)",
		ArgsUsage: "<template-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip confirmation"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			templateID := cmd.Args().First()
			if templateID == "" {
				return fmt.Errorf("usage: feedbackctl templates delete <template-id>")
			}
			if !cmd.Bool("yes") && !confirm("Delete this feedback template?") {
				fmt.Println("Cancelled.")
				return nil
			}

			e, err := newEnv()
			if err != nil {
				return err
			}
			user, err := e.currentUser()
			if err != nil {
				return err
			}
			if err := e.templates.Delete(ctx, templateID); err != nil {
				return friendly(err)
			}
			fmt.Println("Template deleted.")
			fmt.Println()

			templates, err := e.templates.ListForRole(ctx, user.Role)
			if err != nil {
				return friendly(err)
			}
			printTemplates(os.Stdout, templates)
			return nil
		},
	}
}
