package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/nettogo/internal/calculation"
	"github.com/rgehrsitz/nettogo/internal/config"
	"github.com/rgehrsitz/nettogo/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options holds the persistent flags and the settings resolved from them
type options struct {
	envFile       string
	format        string
	constantsFile string
	debug         bool

	settings config.Settings
	logger   *logrus.Logger
}

// load reads the environment and lets explicitly set flags override it
func (o *options) load(cmd *cobra.Command) error {
	s, err := config.LoadSettingsWithFile(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		s.Format = o.format
	}
	if flags.Changed("constants") {
		s.ConstantsFile = o.constantsFile
	}
	if flags.Changed("debug") {
		s.Debug = o.debug
	}
	s.Format = strings.ToLower(s.Format)

	o.settings = s
	o.logger = newLogger(cmd.ErrOrStderr(), s.Debug)
	o.logger.Debugf("settings: format=%s constants=%q listen=%s", s.Format, s.ConstantsFile, s.ListenAddr)
	return nil
}

// parser returns an input parser over the configured constants table
func (o *options) parser() (*config.InputParser, error) {
	table, err := o.settings.ConstantsTable()
	if err != nil {
		return nil, err
	}
	return config.NewInputParser(table), nil
}

// engine builds a calculation engine over the parser's constants
func (o *options) engine(parser *config.InputParser) *calculation.Engine {
	engine := calculation.NewEngineWithConstants(parser.Constants)
	engine.SetLogger(o.logger)
	return engine
}

func newLogger(w io.Writer, debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "netto",
		Short: "German gross-to-net payroll calculator",
		Long: `Estimate the monthly net income of German employees from their gross salary.

Computes statutory health (KV), care (PV), pension (RV) and unemployment (AV)
insurance contributions, wage tax and the solidarity surcharge for one or more
scenarios and compares them side by side.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with NETTO_* settings")
	flags.StringVarP(&opts.format, "format", "f", "console", "Output format: "+strings.Join(output.FormatterNames(), ", "))
	flags.StringVar(&opts.constantsFile, "constants", "", "Constants YAML file replacing the built-in table")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		calculateCmd(opts),
		validateCmd(opts),
		compareCmd(opts),
		breakEvenCmd(opts),
		constantsCmd(opts),
		serveCmd(opts),
		tuiCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

func calculateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate the net income of every scenario in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := opts.parser()
			if err != nil {
				return err
			}
			configData, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			collection, err := parser.Collection(configData)
			if err != nil {
				return err
			}

			results := opts.engine(parser).EvaluateAll(collection.List())
			return output.GenerateReport(cmd.OutOrStdout(), results, opts.settings.Format)
		},
	}
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a scenarios file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := opts.parser()
			if err != nil {
				return err
			}
			configData, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration file %s is valid (%d scenarios)\n", args[0], len(configData.Scenarios))
			for i, d := range configData.Scenarios {
				if err := parser.ValidateScenario(d); err != nil {
					fmt.Fprintf(out, "Warning: scenario %d: %v\n", i+1, err)
				}
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "netto %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
