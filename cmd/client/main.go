package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"catalogkeeper/internal/client/api"
	"catalogkeeper/internal/client/catalog"
	"catalogkeeper/internal/client/cli"
	"catalogkeeper/internal/client/session"
	"catalogkeeper/internal/client/storage"
	"catalogkeeper/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServerURL(), "Server URL")
	dbPath := flag.String("db", "catalogkeeper-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	clientID, err := loadClientID(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load client id: %v\n", err)
		os.Exit(1)
	}

	apiClient := api.NewClient(*serverURL, clientID)

	sess := session.NewManager(apiClient, boltStorage)
	apiClient.SetAuthSource(sess)

	if err := sess.Initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
		os.Exit(1)
	}

	store := catalog.NewStore(apiClient, sess)
	c := cli.New(sess, store)

	if err := runCommand(ctx, c, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, c *cli.Cli, command string, args []string) error {
	switch command {
	case "signup":
		return c.RunSignup(ctx)
	case "login":
		return c.RunLogin(ctx)
	case "logout":
		return c.RunLogout(ctx)
	case "status":
		return c.RunStatus(ctx)
	case "list":
		return c.RunList(ctx, args)
	case "add":
		return c.RunAdd(ctx)
	case "update":
		return c.RunUpdate(ctx, args)
	case "delete":
		return c.RunDelete(ctx, args)
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// loadClientID returns the persistent client instance id, generating one on
// first run.
func loadClientID(ctx context.Context, meta storage.MetadataStorage) (string, error) {
	id, err := meta.GetClientID(ctx)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, storage.ErrClientIDNotFound) {
		return "", err
	}

	id = uuid.New().String()
	if err := meta.SaveClientID(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

func defaultServerURL() string {
	if url := os.Getenv("CATALOGKEEPER_SERVER"); url != "" {
		return url
	}
	return "http://127.0.0.1:5000"
}

func printVersion() {
	fmt.Printf("Catalogkeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
