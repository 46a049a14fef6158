// Package cmd wires the ctlr command tree together.
package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fipl-hse/2024-2-level-ctlr/checks"
	checkcmd "github.com/fipl-hse/2024-2-level-ctlr/cmd/check"
	"github.com/fipl-hse/2024-2-level-ctlr/cmd/checkdoc"
	"github.com/fipl-hse/2024-2-level-ctlr/cmd/checkinit"
	corpuscmd "github.com/fipl-hse/2024-2-level-ctlr/cmd/corpus"
	"github.com/fipl-hse/2024-2-level-ctlr/cmd/patterns"
	"github.com/fipl-hse/2024-2-level-ctlr/cmd/pos"
	"github.com/fipl-hse/2024-2-level-ctlr/cmd/process"
	"github.com/fipl-hse/2024-2-level-ctlr/cmd/scrape"
	"github.com/fipl-hse/2024-2-level-ctlr/internal/logging"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

var logLevel string
var logFormat string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ctlr",
	Short: "Build and analyze a Russian news corpus",
	Long: `ctlr is the corpus toolchain for linguistic research. It scrapes a
news site into a dataset of raw articles, annotates them into CoNLL-U,
computes part-of-speech statistics, searches syntactic patterns, and runs
the project's precommit check battery.

Use 'ctlr --help' to see all available commands, or 'ctlr <command> --help'
for detailed information about a specific command.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(parseLevel(logLevel), logFormat)
	},
}

// Execute runs the command tree. A failing check-battery step propagates its
// own exit code; every other error exits with 1.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	logging.Child("ctlr").Error(err.Error())

	var stepErr *checks.StepError
	if errors.As(err, &stepErr) {
		os.Exit(stepErr.Code)
	}
	os.Exit(1)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func init() {
	rootCmd.AddCommand(scrape.Cmd)
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(pos.Cmd)
	rootCmd.AddCommand(patterns.Cmd)
	rootCmd.AddCommand(checkcmd.Cmd)
	rootCmd.AddCommand(checkdoc.Cmd)
	rootCmd.AddCommand(checkinit.Cmd)
	rootCmd.AddCommand(corpuscmd.Cmd)

	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit
	rootCmd.Version = version

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}
