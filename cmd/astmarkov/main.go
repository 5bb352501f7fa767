package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/viant/astmarkov/analyzer"
	"github.com/viant/astmarkov/config"
	"github.com/viant/astmarkov/source"
	"golang.org/x/term"
)

var (
	cfgFile      string
	verbose      bool
	flagLanguage string
	flagOrder    int

	logger *logrus.Logger
	cfg    *config.Config
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "astmarkov",
	Short:         "Markov-chain feature vectors from source code syntax trees",
	Long:          "astmarkov parses snippets, reduces their syntax graphs to Markov chains over node types and flattens the chains into fixed-length vectors sharing one corpus alphabet.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		if !term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetFormatter(&logrus.JSONFormatter{})
		}
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}

		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		if cmd.Flags().Changed("language") {
			cfg.Language = flagLanguage
		}
		if cmd.Flags().Changed("order") {
			cfg.Order = flagOrder
		}
		logger.WithFields(logrus.Fields{
			"language": cfg.Language,
			"order":    cfg.Order,
		}).Debug("configuration loaded")
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .astmarkov/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&flagLanguage, "language", "l", "", "snippet language: python|go|javascript|typescript")
	rootCmd.PersistentFlags().IntVar(&flagOrder, "order", 0, "number of lifts applied before chain estimation")

	rootCmd.AddCommand(vectorizeCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(graphCmd)
}

// newAnalyzer builds an analyzer for language from the loaded configuration
func newAnalyzer(language *source.Language) *analyzer.Analyzer {
	return analyzer.New(language,
		analyzer.WithExclusions(cfg.Exclusions...),
		analyzer.WithOrder(cfg.Order),
		analyzer.WithLogger(logger),
		analyzer.WithCache(cfg.Cache),
		analyzer.WithProgressInterval(cfg.Progress.Collect, cfg.Progress.Vectorize),
	)
}
