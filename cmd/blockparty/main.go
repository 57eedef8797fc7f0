package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"blockparty/internal/api"
	"blockparty/internal/capture"
	"blockparty/internal/config"
	"blockparty/internal/save"
	"blockparty/internal/sched"
	"blockparty/internal/shop"
	"blockparty/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:          "blockparty",
		Short:        "Block Party Tycoon shop simulator",
		SilenceUsage: true,
	}
	root.AddCommand(
		newPlayCmd(),
		newServeCmd(),
		newSimCmd(),
	)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func buildGame(logger *slog.Logger) (*shop.Service, *sched.Scheduler, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, err
	}
	bal, err := cfg.Balance()
	if err != nil {
		return nil, nil, err
	}
	store, err := save.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	svc := shop.NewService(bal, store, logger, cfg.Seed)
	return svc, sched.New(svc, logger), nil
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the shop in an interactive terminal session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Keep logs off the alt screen.
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc, scheduler, err := buildGame(logger)
			if err != nil {
				return err
			}
			scheduler.Start(cmd.Context())
			defer func() {
				scheduler.Stop()
				svc.Close()
			}()

			prog := tea.NewProgram(tui.New(svc), tea.WithAltScreen())
			if _, err := prog.Run(); err != nil {
				return err
			}
			fmt.Print(capture.ReplayCard(svc.Snapshot()))
			printSuccess("Shop closed. Progress saved.")
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the simulation behind a local HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
			svc, scheduler, err := buildGame(logger)
			if err != nil {
				return err
			}
			scheduler.Start(ctx)
			defer func() {
				scheduler.Stop()
				svc.Close()
			}()

			server := api.New(logger, svc)
			httpServer := &http.Server{
				Addr:              cfg.Addr,
				Handler:           server.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				_ = httpServer.Shutdown(shutdownCtx)
			}()

			logger.Info("blockparty api listening", "addr", cfg.Addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}

func newSimCmd() *cobra.Command {
	var runFor time.Duration
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a headless timed session with auto staff and print the replay card",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
			svc, scheduler, err := buildGame(logger)
			if err != nil {
				return err
			}
			svc.ToggleAutoStaff()
			scheduler.Start(ctx)

			printInfo(fmt.Sprintf("Simulating for %s...", runFor))
			select {
			case <-ctx.Done():
				printWarn("Interrupted.")
			case <-time.After(runFor):
			}
			scheduler.Stop()
			svc.Close()

			fmt.Print(capture.ReplayCard(svc.Snapshot()))
			printSuccess("Simulation complete.")
			return nil
		},
	}
	cmd.Flags().DurationVar(&runFor, "for", 30*time.Second, "how long to run the simulation")
	return cmd
}
