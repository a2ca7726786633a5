package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iudanet/takenotes/internal/client/api"
	"github.com/iudanet/takenotes/internal/client/auth"
	"github.com/iudanet/takenotes/internal/client/cli"
	"github.com/iudanet/takenotes/internal/client/iocli"
	"github.com/iudanet/takenotes/internal/client/notes"
	"github.com/iudanet/takenotes/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	envServer = "TAKENOTES_SERVER"
	envDB     = "TAKENOTES_DB"

	defaultDBPath = "takenotes-client.db"
)

type config struct {
	serverURL string
	dbPath    string
	logLevel  slog.Level
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", api.DefaultBaseURL, "Server URL (env "+envServer+")")
	dbPath := flag.String("db", defaultDBPath, "Path to local database (env "+envDB+")")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")

	flag.Usage = func() { cli.PrintUsage(os.Stderr) }
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	// .env необязателен; переменные окружения процесса важнее него
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := resolveConfig(*serverURL, *dbPath, *logLevel, explicitFlags(), os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, cfg, logger, args[0], args[1:])
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, command string, args []string) error {
	boltStorage, err := boltdb.New(ctx, cfg.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	tokenStore, err := auth.NewTokenStore(ctx, boltStorage, logger)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	apiClient := api.NewClient(cfg.serverURL, tokenStore, api.WithLogger(logger))

	authService := auth.NewAuthService(apiClient, tokenStore, logger)
	notesService := notes.NewService(apiClient, logger)

	return cli.New(iocli.NewStdio(), authService, notesService).Run(ctx, command, args)
}

// explicitFlags возвращает флаги, явно заданные в командной строке
func explicitFlags() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// resolveConfig применяет приоритет: флаг > окружение (включая .env) > значение по умолчанию
func resolveConfig(serverURL, dbPath, logLevel string, set map[string]bool, getenv func(string) string) (config, error) {
	cfg := config{serverURL: serverURL, dbPath: dbPath}

	if !set["server"] {
		if v := getenv(envServer); v != "" {
			cfg.serverURL = v
		}
	}
	if !set["db"] {
		if v := getenv(envDB); v != "" {
			cfg.dbPath = v
		}
	}

	if err := cfg.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return config{}, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	return cfg, nil
}

func printVersion() {
	fmt.Printf("TakeNotes Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
