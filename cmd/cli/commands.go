package main

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"telemedicina-service/internal/app/client"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/dto/requests"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type cliState struct {
	log    *logrus.Logger
	client *client.Client
	stdin  io.Reader
	stdout io.Writer
}

func (s *cliState) setup(ctx *cli.Context) error {
	if ctx.Bool("verbose") {
		s.log.SetLevel(logrus.DebugLevel)
	}
	if s.stdin == nil {
		s.stdin = os.Stdin
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}

	sessionPath := ctx.String("session-file")
	if sessionPath == "" {
		var err error
		sessionPath, err = client.DefaultSessionPath()
		if err != nil {
			return err
		}
	}
	s.log.WithField("session_file", sessionPath).Debug("using session store")

	s.client = client.NewClient(ctx.String("server"), nil, client.NewFileSessionStore(sessionPath), s.log)
	return nil
}

// readPassword takes the first line of stdin so secrets stay out of the
// process arguments.
func (s *cliState) readPassword() (string, error) {
	sc := bufio.NewScanner(s.stdin)
	if !sc.Scan() {
		if sc.Err() != nil {
			return "", sc.Err()
		}
		return "", errors.New("missing password from stdin")
	}
	password := strings.TrimRight(sc.Text(), "\r\n")
	if password == "" {
		return "", errors.New("missing password from stdin")
	}
	return password, nil
}

func roleFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "role",
		Aliases:  []string{"r"},
		Usage:    "One of patient, doctor or admin",
		Required: true,
	}
}

func emailFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "email",
		Aliases:  []string{"e"},
		Required: true,
	}
}

func loginCmd(state *cliState) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in with the given role (password is read from stdin)",
		Flags: []cli.Flag{emailFlag(), roleFlag()},
		Action: func(ctx *cli.Context) error {
			role, err := models.ParseRole(ctx.String("role"))
			if err != nil {
				return err
			}
			password, err := state.readPassword()
			if err != nil {
				return err
			}

			result, err := state.client.LoginUser(ctx.Context, ctx.String("email"), password, role)
			if err != nil {
				return err
			}

			fmt.Fprintf(state.stdout, "%s\nsigned in as %s (%s), continue at %s\n",
				result.Message, result.User.FullName, result.User.Role, result.LandingPage)
			return nil
		},
	}
}

// registrationFlags maps the profile fields a role may collect to their flags.
var registrationFlags = map[string]string{
	"phone":         "phone",
	"birthDate":     "birth-date",
	"specialty":     "specialty",
	"licenseNumber": "license-number",
	"cv":            "cv",
}

func registerCmd(state *cliState) *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create an account (password is read from stdin)",
		Flags: []cli.Flag{
			emailFlag(),
			roleFlag(),
			&cli.StringFlag{Name: "full-name", Aliases: []string{"n"}, Required: true},
			&cli.StringFlag{Name: "phone"},
			&cli.StringFlag{Name: "birth-date", Usage: "Patients only, YYYY-MM-DD"},
			&cli.StringFlag{Name: "specialty", Usage: "Doctors only"},
			&cli.StringFlag{Name: "license-number", Usage: "Doctors only"},
			&cli.StringFlag{Name: "cv", Usage: "Doctors only, path to the cv document"},
		},
		Action: func(ctx *cli.Context) error {
			role, err := models.ParseRole(ctx.String("role"))
			if err != nil {
				return err
			}
			warnIgnoredFields(state.log, ctx, role)

			password, err := state.readPassword()
			if err != nil {
				return err
			}

			form := &requests.RegisterUser{
				Email:         ctx.String("email"),
				Password:      password,
				FullName:      ctx.String("full-name"),
				Role:          role.String(),
				Phone:         ctx.String("phone"),
				BirthDate:     ctx.String("birth-date"),
				Specialty:     ctx.String("specialty"),
				LicenseNumber: ctx.String("license-number"),
			}
			if path := ctx.String("cv"); path != "" && role == models.RoleDoctor {
				form.CV, err = fileToDataURL(path)
				if err != nil {
					return err
				}
			}

			result, err := state.client.RegisterUser(ctx.Context, form)
			if err != nil {
				return err
			}

			fmt.Fprintf(state.stdout, "%s\nnext: %s\n", result.Message, result.NextView)
			return nil
		},
	}
}

func warnIgnoredFields(log *logrus.Logger, ctx *cli.Context, role models.Role) {
	collected := map[string]bool{}
	for _, field := range role.RegistrationFields() {
		collected[field] = true
	}
	for field, flagName := range registrationFlags {
		if ctx.IsSet(flagName) && !collected[field] {
			log.WithFields(logrus.Fields{"flag": flagName, "role": role}).Warn("flag is not collected for this role and will be ignored")
		}
	}
}

func fileToDataURL(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

func whoamiCmd(state *cliState) *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed in user",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verify", Usage: "Ask the server to confirm the session"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool("verify") {
				me, err := state.client.VerifySession(ctx.Context)
				if err != nil {
					return redirectHint(err)
				}
				fmt.Fprintf(state.stdout, "%s <%s> as %s (verified)\n", me.FullName, me.Email, me.Role)
				return nil
			}

			record, err := state.client.CheckAuth()
			if err != nil {
				return redirectHint(err)
			}
			fmt.Fprintf(state.stdout, "%s <%s> as %s, landing page %s\n",
				record.User.FullName, record.User.Email, record.User.Role, record.User.Role.LandingPage())
			return nil
		},
	}
}

func redirectHint(err error) error {
	var redirect *client.RedirectError
	if errors.As(err, &redirect) {
		return fmt.Errorf("%w, sign in again (%s)", err, redirect.Target)
	}
	return err
}

func logoutCmd(state *cliState) *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Revoke and forget the stored session",
		Action: func(ctx *cli.Context) error {
			page, err := state.client.Logout(ctx.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(state.stdout, "signed out, continue at %s\n", page)
			return nil
		},
	}
}

func recoverCmd(state *cliState) *cli.Command {
	return &cli.Command{
		Name:  "recover",
		Usage: "Mail a password reset link",
		Flags: []cli.Flag{emailFlag()},
		Action: func(ctx *cli.Context) error {
			message, err := state.client.RecoverPassword(ctx.Context, ctx.String("email"))
			if err != nil {
				return err
			}
			fmt.Fprintln(state.stdout, message)
			return nil
		},
	}
}

func resetPasswordCmd(state *cliState) *cli.Command {
	return &cli.Command{
		Name:  "reset-password",
		Usage: "Choose a new password with a mailed token (new password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Aliases: []string{"t"}, Required: true},
		},
		Action: func(ctx *cli.Context) error {
			password, err := state.readPassword()
			if err != nil {
				return err
			}
			message, err := state.client.ResetPassword(ctx.Context, ctx.String("token"), password)
			if err != nil {
				return err
			}
			fmt.Fprintln(state.stdout, message)
			return nil
		},
	}
}
