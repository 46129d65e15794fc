package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func responsesCommand() *cli.Command {
	return &cli.Command{
		Name:  "responses",
		Usage: "list submitted responses (admin only)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list every submitted response",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					e, err := newEnv()
					if err != nil {
						return err
					}
					if _, err := e.currentUser(); err != nil {
						return err
					}
					responses, err := e.responses.ListAll(ctx)
					if err != nil {
						return friendly(err)
					}
					printResponses(os.Stdout, responses)
					return nil
				},
			},
		},
	}
}

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "answer a feedback template",
		ArgsUsage: "<template-id>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "answer", Aliases: []string{"a"}, Usage: "answer for one sub-question, repeatable; omit to answer interactively"},
			&cli.IntFlag{Name: "rating", Aliases: []string{"r"}, Usage: "overall rating, 1-5", Value: 5},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			templateID := cmd.Args().First()
			if templateID == "" {
				return fmt.Errorf("usage: feedbackctl submit <template-id>")
			}

			e, err := newEnv()
			if err != nil {
				return err
			}
			user, err := e.currentUser()
			if err != nil {
				return err
			}

			// The template drives the question list; fetch it first so the
			// answer count can be checked against it.
			template, err := e.templates.Get(ctx, user.Role, templateID)
			if err != nil {
				return friendly(err)
			}

			answers := cmd.StringSlice("answer")
			if len(answers) == 0 {
				fmt.Printf("%s\n\n", template.Title)
				answers, err = promptAnswers(template.Questions())
				if err != nil {
					return err
				}
			}

			if err := e.responses.Submit(ctx, template, answers, int(cmd.Int("rating"))); err != nil {
				return friendly(err)
			}
			fmt.Println("Feedback submitted, thank you!")
			return nil
		},
	}
}
