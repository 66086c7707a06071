package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/flixstream/flix/internal/admin"
	"github.com/flixstream/flix/internal/catalog"
	"github.com/flixstream/flix/internal/config"
	flixlog "github.com/flixstream/flix/internal/log"
	"github.com/flixstream/flix/internal/service"
	"github.com/flixstream/flix/internal/tui"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.BoolVar(showVersion, "v", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("flix %s\n", version)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := flixlog.SetupLogger(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		logger = flixlog.NullLogger()
	}
	slog.SetDefault(logger)

	if !cfg.IsConfigured() {
		if err := runSetup(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
			os.Exit(1)
		}
	}

	client := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, cfg.Catalog.ImageBaseURL, logger)
	catalogSvc := service.NewCatalogService(client, logger)

	opts := tui.Options{
		Catalog: catalogSvc,
		UserID:  cfg.Database.UserID,
		Logger:  logger,
	}

	// The database is optional: without it the admin panel and watch
	// history are simply unavailable.
	if cfg.Database.DSN != "" {
		store, err := admin.NewStore(cfg.Database.DSN, logger)
		if err != nil {
			logger.Warn("database unavailable, admin features disabled", "error", err)
		} else {
			defer store.Close()
			opts.Store = store
			opts.Admin = admin.NewService(store, logger)
		}
	}

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program terminated", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSetup collects the catalog API key and optional database settings on
// first run. The key is read without echo and lands in the user's config
// file, never in the binary.
func runSetup(cfg *config.Config) error {
	fmt.Println("flix first-run setup")
	fmt.Println()
	fmt.Printf("Catalog URL: %s\n", cfg.Catalog.BaseURL)
	fmt.Print("API key (input hidden): ")

	keyBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading API key: %w", err)
	}
	apiKey := strings.TrimSpace(string(keyBytes))
	if apiKey == "" {
		return fmt.Errorf("an API key is required")
	}
	cfg.Catalog.APIKey = apiKey

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Postgres DSN (optional, enter to skip): ")
	dsn, err := reader.ReadString('\n')
	if err == nil {
		cfg.Database.DSN = strings.TrimSpace(dsn)
	}

	if cfg.Database.DSN != "" {
		fmt.Print("Your profile ID: ")
		userID, err := reader.ReadString('\n')
		if err == nil {
			cfg.Database.UserID = strings.TrimSpace(userID)
		}
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("Saved. Starting flix...")
	return nil
}
