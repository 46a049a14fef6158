// Package process implements the process command: clean every stored
// article and annotate it into CoNLL-U.
package process

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fipl-hse/2024-2-level-ctlr/corpus"
	"github.com/fipl-hse/2024-2-level-ctlr/pipeline"
	"github.com/fipl-hse/2024-2-level-ctlr/udpipe"
)

type processOptions struct {
	assetsPath   string
	udpipeBinary string
	udpipeModel  string
	skipAnalysis bool
}

// Cmd represents the process command.
var Cmd = NewCommand()

// NewCommand returns a new process command instance.
func NewCommand() *cobra.Command {
	opts := &processOptions{}

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Clean stored articles and annotate them into CoNLL-U.",
		Long: `Validate the dataset, write N_cleaned.txt for every article and, unless
analysis is skipped, run the udpipe analyzer to produce N_udpipe_conllu.conllu
artifacts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.assetsPath, "assets", "a", "tmp/articles", "Dataset directory")
	cmd.Flags().StringVar(&opts.udpipeBinary, "udpipe-binary", "udpipe", "udpipe executable")
	cmd.Flags().StringVar(&opts.udpipeModel, "udpipe-model", "", "udpipe model file")
	cmd.Flags().BoolVar(&opts.skipAnalysis, "skip-analysis", false, "Only write cleaned text")

	return cmd
}

func runProcess(cmd *cobra.Command, opts *processOptions) error {
	manager, err := corpus.NewManager(opts.assetsPath)
	if err != nil {
		return err
	}

	var analyzer pipeline.Analyzer
	if !opts.skipAnalysis {
		if opts.udpipeModel == "" {
			return fmt.Errorf("--udpipe-model is required unless --skip-analysis is set")
		}
		analyzer, err = udpipe.New(opts.udpipeBinary, opts.udpipeModel)
		if err != nil {
			return err
		}
	}

	return pipeline.NewTextProcessing(manager, analyzer).Run(cmd.Context())
}
