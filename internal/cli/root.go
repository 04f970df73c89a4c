package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ytget/countries/internal/config"
	"github.com/ytget/countries/internal/logger"
	"github.com/ytget/countries/internal/merge"
)

// Flag names shared by several commands
const (
	flagConfig     = "config"
	flagDataDir    = "data-dir"
	flagMergedFile = "merged-file"
	flagEndpoint   = "endpoint"
	flagLogLevel   = "log-level"
	flagNoColor    = "no-color"
)

type options struct {
	configPath string
	dataDir    string
	mergedFile string
	endpoint   string
	logLevel   string
	noColor    bool
}

// app carries what every command needs once flags are parsed
type app struct {
	opts     options
	pipeline config.Pipeline
	log      logr.Logger
	out      io.Writer
	errOut   io.Writer
	// dirPinned is true when the data directory came from a flag
	dirPinned bool
}

// NewRootCommand builds the command tree. viewer opens the desktop window;
// tests pass a stub.
func NewRootCommand(viewer Viewer) *cobra.Command {
	a := &app{log: logr.Discard()}

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Fetch country data per region, merge it and browse it",
		Long: "countries downloads country metadata for each region from a REST API,\n" +
			"writes one CSV file per region, merges them into one file tagged with\n" +
			"the continent, and opens a desktop viewer with search, sort, filter\n" +
			"and statistics.",
		Example:       "  countries\n  countries fetch --data-dir data\n  countries list --search arg\n  countries list --where 'continent == \"Europe\" && population > 10000000' --sort population --desc",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.fetch(cmd.Context()); err != nil {
				return err
			}
			if _, err := a.merge(); err != nil && !errors.Is(err, merge.ErrNoInputFiles) {
				return err
			}
			return viewer(cmd.Context(), ViewRequest{Pipeline: a.pipeline, DirPinned: true})
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.opts.configPath, flagConfig, "", "path to a YAML pipeline config")
	f.StringVar(&a.opts.dataDir, flagDataDir, "", "directory for region and merged CSV files")
	f.StringVar(&a.opts.mergedFile, flagMergedFile, "", "merged CSV file name or path")
	f.StringVar(&a.opts.endpoint, flagEndpoint, "", "REST endpoint; the region name is appended")
	f.StringVar(&a.opts.logLevel, flagLogLevel, "", "log level: debug|info|warn|error")
	f.BoolVar(&a.opts.noColor, flagNoColor, false, "disable color output")

	cmd.AddCommand(
		newFetchCommand(a),
		newMergeCommand(a),
		newViewCommand(a, viewer),
		newStatsCommand(a),
		newListCommand(a),
		newConfigCommand(a),
	)
	return cmd
}

// setup loads the pipeline config, applies flag overrides and installs the logger
func (a *app) setup(cmd *cobra.Command) error {
	p, err := config.LoadPipeline(a.opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(flagDataDir) {
		p.DataDir = a.opts.dataDir
		a.dirPinned = true
	}
	if flags.Changed(flagMergedFile) {
		p.MergedFile = a.opts.mergedFile
	}
	if flags.Changed(flagEndpoint) {
		p.Endpoint = a.opts.endpoint
	}
	if flags.Changed(flagLogLevel) {
		p.LogLevel = a.opts.logLevel
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logger.ParseLevel(p.LogLevel)
	if err != nil {
		return err
	}
	lgr := logger.WithValues(logger.Get(level), logger.CommandKey, cmd.Name())

	a.pipeline = p
	a.log = *lgr
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()
	cmd.SetContext(logger.WithLogger(cmd.Context(), lgr))
	return nil
}

// Execute runs the command line. Ctrl-C cancels in-flight requests.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand(RunViewer).ExecuteContext(ctx)
}
