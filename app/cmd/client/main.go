// Command client is a small terminal client for the vocablo auth stack. It
// drives the session cache directly: state persists in the configured
// key-value store between invocations, so "login" followed later by "status"
// restores the session the same way the web client would.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"vocablo/app/config"
	"vocablo/app/di"
	"vocablo/app/domain"
	"vocablo/app/usecase"
	"vocablo/app/utils/logger"
)

func main() {
	var (
		email    = flag.String("email", "", "Account email")
		password = flag.String("password", "", "Account password")
		name     = flag.String("name", "", "Display name (register only)")
	)
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "usage: client [flags] login|register|status|logout")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	appLogger, err := logger.New("warn")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger error:", err)
		os.Exit(1)
	}

	container, err := di.NewContainer(cfg, appLogger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup error:", err)
		os.Exit(1)
	}
	defer container.Close()

	cache := usecase.NewSessionCache(container.AuthGateway, container.Profiles, container.Store, appLogger)
	cache.Subscribe()
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := cache.Initialize(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "initialization error:", err)
		os.Exit(1)
	}

	switch command {
	case "login":
		user, err := cache.Login(ctx, domain.Credentials{Email: *email, Password: *password})
		if err != nil {
			fmt.Fprintln(os.Stderr, "login failed:", err)
			os.Exit(1)
		}
		fmt.Printf("logged in as %s <%s>\n", user.Name, user.EmailOrEmpty())

	case "register":
		result, err := cache.Register(ctx, domain.Registration{
			Name:            *name,
			Email:           *email,
			Password:        *password,
			ConfirmPassword: *password,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "registration failed:", err)
			os.Exit(1)
		}
		if result.PendingConfirmation {
			fmt.Println("registered; check your email to confirm the account")
		} else {
			fmt.Printf("registered and logged in as %s\n", result.User.Name)
		}

	case "status":
		if !cache.IsAuthenticated() {
			fmt.Println("not logged in")
			return
		}
		user := cache.CurrentUser()
		session := cache.CurrentSession()
		fmt.Printf("logged in as %s <%s>\n", user.Name, user.EmailOrEmpty())
		if !session.ExpiresAt.IsZero() {
			fmt.Printf("session expires in %s\n", session.RemainingTime().Round(time.Second))
		}

	case "logout":
		if err := cache.Logout(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "logout failed:", err)
			os.Exit(1)
		}
		fmt.Println("logged out")

	default:
		fmt.Fprintln(os.Stderr, "unknown command:", command)
		os.Exit(2)
	}
}
