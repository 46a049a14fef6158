// Package patterns implements the patterns command: search a syntactic POS
// pattern across the annotated dataset.
package patterns

import (
	"github.com/spf13/cobra"

	"github.com/fipl-hse/2024-2-level-ctlr/corpus"
	"github.com/fipl-hse/2024-2-level-ctlr/pipeline"
	"github.com/fipl-hse/2024-2-level-ctlr/udpipe"
)

type patternsOptions struct {
	assetsPath   string
	udpipeBinary string
	udpipeModel  string
	pos          []string
}

// Cmd represents the patterns command.
var Cmd = NewCommand()

// NewCommand returns a new patterns command instance.
func NewCommand() *cobra.Command {
	opts := &patternsOptions{}

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Search a three-level POS pattern in dependency trees.",
		Long: `Build a dependency graph for every sentence and search for the
root/dependent/child POS chain given via --pos. Matched subtrees are written
to N_pattern.json keyed by sentence index.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatterns(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.assetsPath, "assets", "a", "tmp/articles", "Dataset directory")
	cmd.Flags().StringVar(&opts.udpipeBinary, "udpipe-binary", "udpipe", "udpipe executable")
	cmd.Flags().StringVar(&opts.udpipeModel, "udpipe-model", "", "udpipe model file")
	cmd.Flags().StringSliceVar(&opts.pos, "pos", []string{"VERB", "NOUN", "ADJ"},
		"Root, dependent and child POS tags")

	return cmd
}

func runPatterns(cmd *cobra.Command, opts *patternsOptions) error {
	manager, err := corpus.NewManager(opts.assetsPath)
	if err != nil {
		return err
	}

	analyzer, err := udpipe.New(opts.udpipeBinary, opts.udpipeModel)
	if err != nil {
		return err
	}

	search, err := pipeline.NewPatternSearch(manager, analyzer, opts.pos)
	if err != nil {
		return err
	}
	return search.Run(cmd.Context())
}
