// cmd/adduser/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"expense-tracker/internal/app"
	"expense-tracker/internal/auth"
	"expense-tracker/internal/config"
	"expense-tracker/internal/service"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "adduser:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stdout)
	email := fs.String("email", "", "email address (required)")
	first := fs.String("first", "", "first name (required)")
	last := fs.String("last", "", "last name (required)")
	password := fs.String("password", "", "password; prompted when omitted")
	driver := fs.String("driver", "", "database driver, overrides DB_DRIVER")
	dsn := fs.String("db", "", "database url or sqlite path, overrides DATABASE_URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *first == "" || *last == "" {
		fs.Usage()
		return errors.New("-email, -first and -last are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *driver != "" {
		cfg.DBDriver = strings.ToLower(*driver)
	}
	if *dsn != "" {
		cfg.DBConn = *dsn
	}
	// keep CLI output clean; only warnings and errors go to the log
	cfg.LogLevel = "warn"
	cfg.SetupLogger()

	pw, confirm := *password, *password
	if pw == "" {
		if pw, confirm, err = promptPassword(stdin, stdout); err != nil {
			return err
		}
	}

	store, closeStore, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := app.NewService(cfg, store, auth.NewTokenService(cfg), nil)
	user, err := svc.Signup(ctx, service.SignupInput{
		FirstName:       *first,
		LastName:        *last,
		Email:           *email,
		Password:        pw,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}
	slog.Debug("User created from CLI", "user_id", user.ID)
	fmt.Fprintf(stdout, "Created user %s <%s>\n", user.ID, user.Email)
	return nil
}

// promptPassword reads the password twice. A terminal gets no echo; other
// input is read line by line.
func promptPassword(stdin io.Reader, stdout io.Writer) (string, string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		read := func(prompt string) (string, error) {
			fmt.Fprint(stdout, prompt)
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(stdout)
			return string(b), err
		}
		pw, err := read("Password: ")
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		confirm, err := read("Confirm password: ")
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		return pw, confirm, nil
	}

	scanner := bufio.NewScanner(stdin)
	var lines []string
	for len(lines) < 2 && scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return "", "", fmt.Errorf("read password: %w", err)
	}
	switch len(lines) {
	case 0:
		return "", "", errors.New("no password given")
	case 1:
		return lines[0], lines[0], nil
	default:
		return lines[0], lines[1], nil
	}
}
