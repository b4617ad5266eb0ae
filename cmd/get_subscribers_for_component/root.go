// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package main

import (
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/config"
	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/lookup"
	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/statuspage"
	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/version"
)

type rootOptions struct {
	componentName string
	componentID   string
	outCSV        string
	outJSON       string

	configPath string
	envFile    string
	pageID     string
	apiURL     string
	logFormat  string
	verbose    bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "get_subscribers_for_component",
		Short: "List the Statuspage subscribers of a component",
		Long: `List the subscribers of one component of a Statuspage page.

The component is given either by name (case-insensitive) or by id. A subscriber
is listed when it is subscribed to the component, to the component's group, or
to the whole page.

Authentication uses the API key in the STATUSPAGE_TOKEN environment variable
and the page is taken from STATUSPAGE_PAGE_ID or --page-id. Both may also be
put in a .env file.`,
		Version:       version.Version,
		SilenceUsage:  true, // Usage is printed for usage errors only
		SilenceErrors: true, // We'll handle error printing ourselves
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return spgerrors.Usagef("unexpected argument %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &spgerrors.UsageError{Message: err.Error()}
	})

	cmd.Flags().StringVar(&opts.componentName, "component-name", "", "Name of the component (case-insensitive)")
	cmd.Flags().StringVar(&opts.componentID, "component-id", "", "Id of the component")
	cmd.Flags().StringVar(&opts.outCSV, "out-csv", "", "Write the subscribers to this CSV file")
	cmd.Flags().StringVar(&opts.outJSON, "out-json", "", "Write the subscribers to this JSON file")

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default: .statuspage.yaml or ~/.statuspage/config.yaml)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Environment file to load (default: .env)")
	cmd.Flags().StringVar(&opts.pageID, "page-id", "", "Statuspage page id (overrides STATUSPAGE_PAGE_ID)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "Statuspage API base URL (overrides STATUSPAGE_API_URL)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// runLookup executes the lookup. Arguments are checked before the
// configuration is loaded so that usage errors never reach the network.
func runLookup(cmd *cobra.Command, opts rootOptions, stdout, stderr io.Writer) error {
	query := lookup.Query{Name: opts.componentName, ID: opts.componentID}
	if err := query.Validate(); err != nil {
		return err
	}
	if opts.outCSV != "" && opts.outJSON != "" && filepath.Clean(opts.outCSV) == filepath.Clean(opts.outJSON) {
		return spgerrors.Usagef("--out-csv and --out-json must be different files")
	}
	if opts.logFormat != "" && opts.logFormat != "text" && opts.logFormat != "json" {
		return spgerrors.Usagef("invalid --log-format %q: must be text or json", opts.logFormat)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigPath: opts.configPath, EnvFile: opts.envFile})
	if err != nil {
		return err
	}
	cfg.Apply(config.Overrides{PageID: opts.pageID, APIURL: opts.apiURL})
	if opts.logFormat != "" {
		cfg.Defaults.LogFormat = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg, opts.verbose, stderr)
	log.WithFields(logrus.Fields{
		"version":     version.Version,
		"env_file":    cfg.Sources.EnvFile,
		"config_file": cfg.Sources.ConfigFile,
	}).Debug("configuration valid")

	client := statuspage.NewRESTClient(cfg).WithLogger(log)
	_, err = lookup.Run(cmd.Context(), client, query, lookup.Options{
		PerPage:  cfg.Defaults.PerPage,
		CSVPath:  opts.outCSV,
		JSONPath: opts.outJSON,
		Stdout:   stdout,
		Logger:   log,
	})
	return err
}

// newLogger builds the run logger. Every entry carries the run id.
func newLogger(cfg *config.Config, verbose bool, out io.Writer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(out)
	if cfg.Defaults.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Defaults.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logger.WithField("run_id", uuid.New().String())
}
