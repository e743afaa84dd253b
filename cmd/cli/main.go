package main

import (
	"context"
	"os"
	"os/signal"
	"telemedicina-service/internal/app/drivers/logger"
	"telemedicina-service/internal/pkg/constvars"

	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.NewLogrusLogger(constvars.AppEnvDevelopment, false, os.Stderr)
	app := newApp(&cliState{log: log})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := app.RunContext(ctx, os.Args)
	cancel()
	if err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newApp(state *cliState) *cli.App {
	return &cli.App{
		Name:  "telemedicina",
		Usage: "Sign in to the telemedicina portal from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "Base URL of the gateway",
				Value:   "http://localhost:3000",
				EnvVars: []string{"TELEMEDICINA_SERVER_URL"},
			},
			&cli.StringFlag{
				Name:    "session-file",
				Usage:   "Where the signed in session is kept (defaults to the user config dir)",
				EnvVars: []string{"TELEMEDICINA_SESSION_FILE"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log requests and session changes",
			},
		},
		Before: state.setup,
		Commands: []*cli.Command{
			loginCmd(state),
			registerCmd(state),
			whoamiCmd(state),
			logoutCmd(state),
			recoverCmd(state),
			resetPasswordCmd(state),
		},
	}
}
