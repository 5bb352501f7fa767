package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/viant/astmarkov/corpus"
	"github.com/viant/astmarkov/source"
	"github.com/viant/astmarkov/vector"
)

var (
	flagOutput string
	flagFormat string
)

var vectorizeCmd = &cobra.Command{
	Use:   "vectorize <corpus-url>",
	Short: "Vectorize a labeled corpus folder",
	Long:  "Reads every task file of a corpus folder (CSV, one snippet per row), computes one chain per snippet and writes the alphabet followed by one vector per snippet.",
	Args:  cobra.ExactArgs(1),
	RunE:  runVectorize,
}

func init() {
	vectorizeCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")
	vectorizeCmd.Flags().StringVar(&flagFormat, "format", "", "output format: csv|yaml")
}

func runVectorize(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := cmd.Context()

	if cmd.Flags().Changed("output") {
		cfg.Output.Path = flagOutput
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flagFormat
	}

	language, err := source.NewFactory().Lookup(cfg.Language)
	if err != nil {
		return err
	}

	samples, err := corpus.Load(ctx, args[0], corpus.WithPattern(cfg.Corpus.Pattern))
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"corpus":   args[0],
		"snippets": len(samples),
	}).Info("corpus loaded")

	batch, err := newAnalyzer(language).Vectorize(ctx, corpus.Snippets(samples))
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output.Path != "" {
		file, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", cfg.Output.Path, err)
		}
		defer file.Close()
		out = file
	}

	emitter, err := vector.NewEmitter(cfg.Output.Format, out, corpus.Labels(samples))
	if err != nil {
		return err
	}
	if err := batch.Emit(emitter); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"snippets":   batch.Len(),
		"alphabet":   batch.Alphabet().Len(),
		"dimensions": batch.Alphabet().Dimension(),
		"duration":   time.Since(start).String(),
	}).Info("vectorization complete")
	return nil
}
