package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studentboard/internal/client/client"
)

func (a *App) prompt() string {
	return fmt.Sprintf("sb (%s %d/%d)> ", a.userName, a.page, max(a.pages, 1))
}

func (a *App) repl(ctx context.Context) error {
	for {
		fmt.Fprint(a.out, a.prompt())

		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(a.out)
			return nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: summary, page N, next, prev, all, logout, exit")
		case "summary":
			cmdErr = a.summary(ctx)
		case "page", "p":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintln(a.out, "Usage: page <n>")
				continue
			}
			cmdErr = a.show(ctx, n)
		case "next", "n":
			cmdErr = a.show(ctx, a.page+1)
		case "prev":
			if a.page <= 1 {
				fmt.Fprintln(a.out, "Already on the first page")
				continue
			}
			cmdErr = a.show(ctx, a.page-1)
		case "all":
			cmdErr = a.all(ctx)
		case "logout":
			if err := a.client.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if cmdErr == nil {
			continue
		}

		switch {
		case errors.Is(cmdErr, client.ErrUnauthorized):
			fmt.Fprintln(a.out, "Session expired, please log in again")
			if err := a.login(ctx); err != nil {
				return err
			}
		case errors.Is(cmdErr, client.ErrInvalidPage):
			fmt.Fprintln(a.out, "Invalid page")
		case errors.Is(cmdErr, client.ErrUnavailable):
			return cmdErr
		default:
			a.logger.Error(ctx, cmdErr.Error())
		}
	}
}

func (a *App) summary(ctx context.Context) error {
	p, err := a.client.FetchPage(ctx, 1)
	if err != nil {
		return err
	}
	a.pages = p.TotalPages
	printSummary(a.out, p)
	return nil
}

func (a *App) show(ctx context.Context, n int) error {
	p, err := a.client.FetchPage(ctx, n)
	if err != nil {
		return err
	}
	a.page = p.Page
	a.pages = p.TotalPages
	return printTable(a.out, p)
}

func (a *App) all(ctx context.Context) error {
	first, err := a.client.FetchPage(ctx, 1)
	if err != nil {
		return err
	}
	printSummary(a.out, first)
	if err := printTable(a.out, first); err != nil {
		return err
	}

	for n := 2; n <= first.TotalPages; n++ {
		p, err := a.client.FetchPage(ctx, n)
		if err != nil {
			return err
		}
		if err := printTable(a.out, p); err != nil {
			return err
		}
	}
	a.page = first.TotalPages
	a.pages = first.TotalPages
	return nil
}
