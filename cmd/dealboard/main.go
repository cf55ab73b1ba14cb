package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/dealboard/internal/board"
	"github.com/rovshanmuradov/dealboard/internal/config"
	"github.com/rovshanmuradov/dealboard/internal/dealsource"
	"github.com/rovshanmuradov/dealboard/internal/logger"
	"github.com/rovshanmuradov/dealboard/internal/ui/screen"
)

const onceRenderWidth = 100

func main() {
	os.Exit(run())
}

// run wires flags, environment and config, then starts the requested mode.
// It returns the process exit code so deferred cleanup runs before exit.
func run() int {
	// Parse command line flags
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	once := flag.Bool("once", false, "Fetch once, print the board and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
		return 1
	}

	// Create context with signal handling
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	if *once {
		return runOnce(rootCtx, cfg, os.Stdout, os.Stderr)
	}

	if err := runTUI(rootCtx, cfg); err != nil {
		log.Printf("TUI application failed: %v", err)
		return 1
	}
	return 0
}

// runOnce performs a single refresh and prints the rendered board.
// The exit code is 1 when the refresh ended in the error phase.
func runOnce(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) int {
	appLogger := logger.CreatePrettyLogger(cfg.DebugLogging, stderr)
	defer func() {
		_ = appLogger.Sync()
	}()

	b, err := newBoard(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create deal source", zap.Error(err))
		return 1
	}

	state := b.Refresh(ctx, board.Initial())
	fmt.Fprintln(stdout, screen.Render(state, screen.RenderOptions{Width: onceRenderWidth, Selected: -1}))

	if state.Phase() == board.PhaseError {
		return 1
	}
	return 0
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	appLogger, sink, err := logger.CreateTUILogger(cfg.DebugLogging, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = appLogger.Sync()
		_ = sink.Close()
	}()

	appLogger.Info("Starting deal board", zap.String("endpoint", cfg.Endpoint))

	b, err := newBoard(cfg, appLogger)
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		screen.NewDealBoardScreen(ctx, b, screen.Options{AutoRefresh: cfg.AutoRefreshInterval()}),
		tea.WithAltScreen(),
	)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		_, err := program.Run()
		return err
	})

	// Wait for shutdown signal or for the program to exit on its own
	g.Go(func() error {
		select {
		case <-gctx.Done():
			appLogger.Info("Shutting down deal board")
			program.Quit()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}

func newBoard(cfg *config.Config, appLogger *zap.Logger) (*board.Board, error) {
	source, err := dealsource.New(sourceOptions(cfg), appLogger)
	if err != nil {
		return nil, fmt.Errorf("deal source: %w", err)
	}
	return board.New(source, appLogger), nil
}

func sourceOptions(cfg *config.Config) dealsource.Options {
	return dealsource.Options{
		Endpoint:      cfg.Endpoint,
		MinProfit:     cfg.MinProfit,
		Timeout:       cfg.Timeout(),
		Retries:       cfg.Retries,
		RetryInterval: cfg.RetryBackoff(),
	}
}
