// Package check implements the check command: the project's fail-fast
// precommit battery.
package check

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fipl-hse/2024-2-level-ctlr/checks"
	"github.com/fipl-hse/2024-2-level-ctlr/internal/logging"
)

type checkOptions struct {
	dirs  []string
	watch bool
}

// Cmd represents the check command.
var Cmd = NewCommand()

// NewCommand returns a new check command instance.
func NewCommand() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [mode]",
		Short: "Run the precommit battery of formatters, linters and tests.",
		Long: `Run the project's quality gates in a fixed order, stopping at the first
failure and exiting with that tool's status code.

The optional mode argument selects the profile: "smoke" runs every check but
skips the filtered test run; any other value (or none) runs the full battery.

Examples:
  ctlr check              # full battery
  ctlr check smoke        # no test run
  ctlr check --watch      # re-run the battery on file changes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := ""
			if len(args) > 0 {
				mode = args[0]
			}
			return runCheck(cmd, mode, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.dirs, "dir", "d", nil,
		"Directories to check (default: the project's standard set)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false,
		"Re-run the battery whenever a checked directory changes")

	return cmd
}

func runCheck(cmd *cobra.Command, mode string, opts *checkOptions) error {
	selfExe, err := os.Executable()
	if err != nil {
		return err
	}

	gate := checks.NewGate(mode, opts.dirs, selfExe, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if !opts.watch {
		return gate.Run(cmd.Context())
	}

	dirs := opts.dirs
	if len(dirs) == 0 {
		dirs = checks.DefaultDirs
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runWatch(ctx, gate, dirs)
}

// runWatch re-runs the battery on every change until ctx ends, then reports
// the outcome of the last completed run.
func runWatch(ctx context.Context, gate *checks.Battery, dirs []string) error {
	log := logging.Child("check")

	var mu sync.Mutex
	var lastErr error
	rerun := func() {
		err := gate.Run(ctx)
		if ctx.Err() != nil {
			// Interrupted mid-run; keep the previous completed status.
			return
		}
		mu.Lock()
		lastErr = err
		mu.Unlock()
		if err != nil {
			log.Error("battery failed", "error", err)
		} else {
			log.Info("battery passed")
		}
	}
	rerun()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return checks.Watch(ctx, dirs, rerun)
	})
	if err := group.Wait(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	return lastErr
}
