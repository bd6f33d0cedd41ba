package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/annualreport"
	"github.com/tsawler/annualreport/docx"
	"github.com/tsawler/annualreport/format"
	"github.com/tsawler/annualreport/internal/config"
	"github.com/tsawler/annualreport/internal/logging"
)

// cli holds flag values and the logger for one command tree.
type cli struct {
	verbose    bool
	output     string
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "annualreport",
		Short: "Generate the Bainum Project annual report",
		Long: `annualreport writes the Bainum Project annual report as a Word document.

The output path defaults to ` + config.DefaultOutput + ` in the current
directory and can be changed with --output, the ` + config.EnvOutput + `
environment variable (also read from .env), or a YAML config file.
A path ending in .html writes an HTML preview instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = c.output
			}
			if c.verbose {
				cfg.Verbose = true
			}
			c.cfg = cfg

			c.logger, err = logging.New(cfg.Verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runGenerate,
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringVarP(&c.output, "output", "o", config.DefaultOutput, "Output path (.docx or .html)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the block outline of a .docx file as YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runInspect,
	})

	return rootCmd
}

// runGenerate builds the report and saves it to the configured path.
func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	path := annualreport.OutputPath(c.cfg.Output)

	b := annualreport.BuildBainumReport()
	for _, w := range b.Warnings() {
		c.logger.Warn("Report adjusted", zap.Int("block", w.Block), zap.String("warning", w.Message))
	}
	c.logger.Debug("Report built",
		zap.Int("blocks", b.Document().Len()),
		zap.String("format", annualreport.OutputFormat(path).String()))

	if err := b.Save(path); err != nil {
		c.logger.Error("Failed to save report", zap.String("path", path), zap.Error(err))
		return err
	}
	c.logger.Debug("Report saved", zap.String("path", path))

	fmt.Fprintf(cmd.OutOrStdout(), "Report generated successfully: %s\n", path)
	return nil
}

// outline is the YAML document printed by inspect.
type outline struct {
	File   string       `yaml:"file"`
	Title  string       `yaml:"title,omitempty"`
	Parts  []string     `yaml:"parts"`
	Blocks []docx.Block `yaml:"blocks"`
}

// runInspect reopens a saved report and prints its outline.
func (c *cli) runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := requireDOCX(path); err != nil {
		c.logger.Error("Cannot inspect file", zap.String("path", path), zap.Error(err))
		return err
	}

	r, err := docx.Open(path)
	if err != nil {
		c.logger.Error("Failed to open document", zap.String("path", path), zap.Error(err))
		return err
	}
	defer r.Close()

	c.logger.Debug("Document opened", zap.String("path", path), zap.Int("blocks", len(r.Blocks())))

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(outline{
		File:   path,
		Title:  r.Metadata().Title,
		Parts:  r.Parts(),
		Blocks: r.Blocks(),
	}); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return enc.Close()
}

// requireDOCX checks the file content, not its name, is a DOCX package.
func requireDOCX(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	got, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("detecting format: %w", err)
	}
	if got != format.DOCX {
		return fmt.Errorf("%s is not a DOCX file (detected %s)", path, got)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
