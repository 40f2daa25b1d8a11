package commands

import (
	"fmt"
	"runtime"

	"github.com/conduit-lang/typedesc/internal/cli/config"
	"github.com/conduit-lang/typedesc/internal/format"
	"github.com/conduit-lang/typedesc/internal/logging"
	"github.com/conduit-lang/typedesc/pkg/typeconv"
	"github.com/conduit-lang/typedesc/pkg/ustring"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// session carries the state shared by subcommands once the configuration
// has been loaded.
type session struct {
	verbose bool
	output  string

	cfg        *config.Config
	logger     *zap.Logger
	formatting typeconv.Formatting
	converter  *typeconv.Converter
}

// load reads the CLI and formatting configuration and builds the logger.
func (s *session) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		if err := config.ValidateOutput(s.output); err != nil {
			return err
		}
		cfg.Output = s.output
	}
	s.cfg = cfg

	level := cfg.LogLevel
	if s.verbose {
		level = "debug"
	}
	s.logger = logging.NewOrNop(level)

	formatting, err := format.LoadConfig(cfg.FormatConfig)
	if err != nil {
		return fmt.Errorf("failed to load format config: %w", err)
	}
	s.formatting = *formatting
	s.converter = typeconv.NewConverter(ustring.Default, s.logger)

	s.logger.Debug("configuration loaded",
		zap.String("output", cfg.Output),
		zap.String("log_level", level),
		zap.String("format_config", cfg.FormatConfig))
	return nil
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "typedesc",
		Short: "Inspect, merge and convert runtime type descriptors",
		Long: color.CyanString(`typedesc - runtime type descriptors for pixel and attribute data

A type descriptor names a base kind (uint8 ... double, string, pointer),
an aggregate shape (scalar, vec2-4, matrix33/44), an optional semantic
hint (color, point, vector, normal, ...) and an array length.

Features:
  • Parse and canonicalize type names such as "point[2]" or "vec3:half"
  • Merge base kinds into a type that can hold both
  • Convert textual values between descriptors
  • Render values with a configurable formatting file`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&s.output, "output", "o", config.OutputText, "Output style: text, json or cbor")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(newParseCommand(s))
	rootCmd.AddCommand(newMergeCommand(s))
	rootCmd.AddCommand(newConvertCommand(s))
	rootCmd.AddCommand(newCatalogCommand(s))
	rootCmd.AddCommand(newFormatConfigCommand(s))

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the typedesc version, Git commit, build date, and Go version",
		// Version needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			out := cmd.OutOrStdout()
			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Fprint(out, "typedesc version: ")
			valueColor.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			valueColor.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			valueColor.Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			valueColor.Fprintln(out, goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
