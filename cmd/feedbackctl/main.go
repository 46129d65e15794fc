package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set at build time through ldflags.
var Version = "v0.1.0"

func main() {
	cmd := &cli.Command{
		Name:    "feedbackctl",
		Usage:   "command-line client for the feedback collection API",
		Version: Version,
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			templatesCommand(),
			responsesCommand(),
			submitCommand(),
			usersCommand(),
			forgotPasswordCommand(),
			resetPasswordCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
