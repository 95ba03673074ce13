// Command bootstrap-admin creates an administrator account directly in
// the database. Useful for first-time setup when the ADMIN_DEFAULT_*
// environment variables are not used.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/petsparadise/petsparadise/internal/repository"
	"github.com/petsparadise/petsparadise/internal/service"
)

type output struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		username    = flag.String("username", "", "Administrator username")
		password    = flag.String("password", "", "Administrator password")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "-username and -password are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "run migrations:", err)
		os.Exit(1)
	}

	svc := service.NewAdminService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	admin, err := svc.Register(ctx, *username, *password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			fmt.Fprintln(os.Stderr, "username already exists")
		} else {
			fmt.Fprintln(os.Stderr, "create admin:", err)
		}
		os.Exit(1)
	}

	out := output{AdminID: admin.ID, Username: admin.Username}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, "encode output:", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Admin created\n  ID:       %s\n  Username: %s\n", out.AdminID, out.Username)
	}
}
