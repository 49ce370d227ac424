package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genricoloni/duoplayer/internal/config"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const stopTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "duoplayer",
		Short:        "Dual-slot media player driven by JSON commands on stdin",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flagsFrom(cmd))
		},
	}

	cmd.Flags().Bool("instant-swap", true, "Hard-cut between slots instead of fading")
	cmd.Flags().Duration("fade", 400*time.Millisecond, "Length of the opacity fade")
	cmd.Flags().Duration("debounce", 100*time.Millisecond, "Window in which a repeated command is dropped")
	cmd.Flags().String("diag-addr", "", "Listen address of the diagnostics server (disabled when empty)")
	cmd.Flags().Bool("priority", true, "Raise the process scheduling priority at startup")
	return cmd
}

// flagsFrom keeps only the flags set on the command line so the environment wins otherwise
func flagsFrom(cmd *cobra.Command) config.Flags {
	fs := cmd.Flags()
	var f config.Flags
	if fs.Changed("instant-swap") {
		f.InstantSwap = lo.ToPtr(lo.Must(fs.GetBool("instant-swap")))
	}
	if fs.Changed("fade") {
		f.Fade = lo.ToPtr(lo.Must(fs.GetDuration("fade")))
	}
	if fs.Changed("debounce") {
		f.Debounce = lo.ToPtr(lo.Must(fs.GetDuration("debounce")))
	}
	if fs.Changed("diag-addr") {
		f.DiagAddr = lo.ToPtr(lo.Must(fs.GetString("diag-addr")))
	}
	if fs.Changed("priority") {
		f.RaisePriority = lo.ToPtr(lo.Must(fs.GetBool("priority")))
	}
	return f
}

func run(parent context.Context, flags config.Flags) error {
	app := fx.New(
		AppOptions,
		fx.Replace(flags),
	)
	if err := app.Err(); err != nil {
		return err
	}

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}

	// Wait for a signal or a window close
	exitCode := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		exitCode = sig.ExitCode
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// newLogger creates the production logger. It writes JSON to stderr only,
// stdout carries the status protocol.
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
