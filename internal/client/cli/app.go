package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/studentboard/internal/client/client"
	"github.com/dmitrijs2005/studentboard/internal/client/config"
	"github.com/dmitrijs2005/studentboard/internal/common"
	"github.com/dmitrijs2005/studentboard/internal/logging"
)

const maxLoginAttempts = 3

var ErrNotLoggedIn = errors.New("not logged in")

type App struct {
	config   *config.Config
	client   client.Client
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	page     int
	pages    int
	userName string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	return newApp(c, apiClient, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, l logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		client: cl,
		logger: l.With("module", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
		page:   1,
	}
}

// Run checks the server, logs in and hands over to the REPL.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to studentboard CLI (type 'help' for commands)")

	if err := a.client.Ping(ctx); err != nil {
		return err
	}

	if err := a.login(ctx); err != nil {
		return err
	}

	return a.repl(ctx)
}

func (a *App) login(ctx context.Context) error {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		userName := a.config.Username
		if userName == "" || attempt > 1 {
			var err error
			userName, err = GetSimpleText(a.reader, "Username", a.out)
			if err != nil {
				return err
			}
		}

		password, err := GetPassword(a.out)
		if err != nil {
			return err
		}

		err = a.client.Login(ctx, userName, string(password))
		common.WipeByteArray(password)

		switch {
		case err == nil:
			a.userName = userName
			fmt.Fprintln(a.out, "Login successful")
			return nil
		case errors.Is(err, client.ErrLoginFailed):
			a.logger.Warn(ctx, "login rejected", "username", userName, "attempt", attempt)
			fmt.Fprintln(a.out, "Invalid username or password")
		default:
			return err
		}
	}

	return ErrNotLoggedIn
}
