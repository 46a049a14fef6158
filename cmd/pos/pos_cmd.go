// Package pos implements the pos command: part-of-speech statistics for an
// annotated dataset.
package pos

import (
	"github.com/spf13/cobra"

	"github.com/fipl-hse/2024-2-level-ctlr/corpus"
	"github.com/fipl-hse/2024-2-level-ctlr/pipeline"
	"github.com/fipl-hse/2024-2-level-ctlr/udpipe"
)

type posOptions struct {
	assetsPath   string
	udpipeBinary string
	udpipeModel  string
}

// Cmd represents the pos command.
var Cmd = NewCommand()

// NewCommand returns a new pos command instance.
func NewCommand() *cobra.Command {
	opts := &posOptions{}

	cmd := &cobra.Command{
		Use:   "pos",
		Short: "Count POS frequencies and render per-article charts.",
		Long: `Load every article's CoNLL-U artifact, count universal POS tags, store
the distribution in N_meta.json and render an N_image.svg chart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPOS(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.assetsPath, "assets", "a", "tmp/articles", "Dataset directory")
	cmd.Flags().StringVar(&opts.udpipeBinary, "udpipe-binary", "udpipe", "udpipe executable")
	cmd.Flags().StringVar(&opts.udpipeModel, "udpipe-model", "", "udpipe model file")

	return cmd
}

func runPOS(cmd *cobra.Command, opts *posOptions) error {
	manager, err := corpus.NewManager(opts.assetsPath)
	if err != nil {
		return err
	}

	analyzer, err := udpipe.New(opts.udpipeBinary, opts.udpipeModel)
	if err != nil {
		return err
	}

	return pipeline.NewPOSFrequency(manager, analyzer).Run(cmd.Context())
}
