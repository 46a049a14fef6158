// Package corpus implements the corpus command group: the maintainer tools
// that turn a per-author source corpus into an annotated gold corpus.
package corpus

import (
	"github.com/spf13/cobra"

	"github.com/fipl-hse/2024-2-level-ctlr/corpus"
	"github.com/fipl-hse/2024-2-level-ctlr/udpipe"
)

// Cmd represents the corpus command.
var Cmd = NewCommand()

// NewCommand returns a new corpus command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Maintain the per-author gold corpus.",
		Long: `Corpus groups the maintainer tools: convert the original per-author texts
into a token-budgeted gold corpus, join each author's texts into total.txt
and annotate the joined texts into total.conllu.`,
	}

	cmd.AddCommand(newConvertCommand())
	cmd.AddCommand(newJoinCommand())
	cmd.AddCommand(newAnnotateCommand())

	return cmd
}

func newConvertCommand() *cobra.Command {
	var opts struct {
		sourceDir    string
		goldDir      string
		tokens       int
		udpipeBinary string
		udpipeModel  string
	}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Copy per-author source texts into the gold corpus up to a token budget.",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := udpipe.New(opts.udpipeBinary, opts.udpipeModel)
			if err != nil {
				return err
			}
			return corpus.Convert(cmd.Context(), analyzer, opts.sourceDir, opts.goldDir, opts.tokens)
		},
	}

	cmd.Flags().StringVar(&opts.sourceDir, "from", "data/original", "Per-author source directory")
	cmd.Flags().StringVar(&opts.goldDir, "to", "data/gold", "Gold corpus directory")
	cmd.Flags().IntVar(&opts.tokens, "tokens", corpus.DefaultTokenBudget, "Non-punctuation token budget per author")
	cmd.Flags().StringVar(&opts.udpipeBinary, "udpipe-binary", "udpipe", "udpipe executable")
	cmd.Flags().StringVar(&opts.udpipeModel, "udpipe-model", "", "udpipe model file")
	cobra.CheckErr(cmd.MarkFlagRequired("udpipe-model"))

	return cmd
}

func newJoinCommand() *cobra.Command {
	var opts struct {
		goldDir   string
		resultDir string
	}

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Concatenate each author's gold texts into total.txt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return corpus.Join(opts.goldDir, opts.resultDir)
		},
	}

	cmd.Flags().StringVar(&opts.goldDir, "from", "data/gold", "Gold corpus directory")
	cmd.Flags().StringVar(&opts.resultDir, "to", "data/result", "Result directory")

	return cmd
}

func newAnnotateCommand() *cobra.Command {
	var opts struct {
		resultDir    string
		udpipeBinary string
		udpipeModel  string
	}

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Annotate each author's total.txt into total.conllu.",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := udpipe.New(opts.udpipeBinary, opts.udpipeModel)
			if err != nil {
				return err
			}
			return corpus.Annotate(cmd.Context(), analyzer, opts.resultDir)
		},
	}

	cmd.Flags().StringVar(&opts.resultDir, "dir", "data/result", "Result directory")
	cmd.Flags().StringVar(&opts.udpipeBinary, "udpipe-binary", "udpipe", "udpipe executable")
	cmd.Flags().StringVar(&opts.udpipeModel, "udpipe-model", "", "udpipe model file")
	cobra.CheckErr(cmd.MarkFlagRequired("udpipe-model"))

	return cmd
}
