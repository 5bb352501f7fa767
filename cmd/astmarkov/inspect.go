package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/astmarkov/analyzer"
	"github.com/viant/astmarkov/source"
	"gopkg.in/yaml.v3"
)

var chainCmd = &cobra.Command{
	Use:   "chain <file>",
	Short: "Print the Markov chain of one source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, src, err := loadSource(cmd.Context(), cmd, args[0])
		if err != nil {
			return err
		}
		chain, err := a.Chain(cmd.Context(), src)
		if err != nil {
			return err
		}
		return writeYAML(cmd, chain)
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Print the syntax graph of one source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, src, err := loadSource(cmd.Context(), cmd, args[0])
		if err != nil {
			return err
		}
		g, err := a.Graph(cmd.Context(), src)
		if err != nil {
			return err
		}
		return writeYAML(cmd, g)
	},
}

// loadSource downloads location and picks the language from --language or the extension
func loadSource(ctx context.Context, cmd *cobra.Command, location string) (*analyzer.Analyzer, []byte, error) {
	factory := source.NewFactory()
	var language *source.Language
	var err error
	if cmd.Flags().Changed("language") {
		language, err = factory.Lookup(cfg.Language)
	} else if language, err = factory.ForFile(location); err != nil {
		language, err = factory.Lookup(cfg.Language)
	}
	if err != nil {
		return nil, nil, err
	}

	src, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return newAnalyzer(language), src, nil
}

func writeYAML(cmd *cobra.Command, value interface{}) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}
