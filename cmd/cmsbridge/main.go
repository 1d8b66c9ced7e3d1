// cmsbridge resolves the headless-CMS front end's build configuration from
// the environment.
//
// Usage:
//
//	cmsbridge resolve
//	cmsbridge resolve --format yaml --env-file .env.production.local
//	cmsbridge env --write-dir /shared
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hartyporpoise/cmsbridge/internal/config"
	"github.com/hartyporpoise/cmsbridge/internal/envfile"
	"github.com/hartyporpoise/cmsbridge/internal/output"
	"github.com/hartyporpoise/cmsbridge/internal/tty"
)

// options holds every flag value; populated by cobra, falling back to env vars.
type options struct {
	EnvFile  string
	LogLevel string
	Format   string
	Pretty   bool
	WriteDir string
}

func main() {
	if err := newRootCmd(os.Environ()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(environ []string) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "cmsbridge",
		Short: "cmsbridge - resolve headless CMS front end configuration",
		Long: `cmsbridge reads WPGRAPHQL_URL, PANTHEON_CMS_ENDPOINT, IMAGE_DOMAIN,
PANTHEON_UPLOAD_PATH and NODE_ENV (plus an optional local dotenv file) and
prints the front end's build configuration: backend GraphQL URL, image URL
and image optimization settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), opts.LogLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.EnvFile, "env-file", envOrDefault("CMSBRIDGE_ENV_FILE", config.DefaultDotenvFile),
		"Dotenv file merged under the process environment (empty = disabled)")
	pf.StringVar(&opts.LogLevel, "log-level", envOrDefault("CMSBRIDGE_LOG_LEVEL", "info"),
		"Log level (debug, info, warn, error)")

	resolve := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("pretty") {
				opts.Pretty = isTerminal(cmd.OutOrStdout())
			}
			return runResolve(cmd.OutOrStdout(), &opts, environ)
		},
	}
	rf := resolve.Flags()
	rf.StringVarP(&opts.Format, "format", "f", envOrDefault("CMSBRIDGE_FORMAT", string(output.JSON)),
		"Output format (json or yaml)")
	rf.BoolVar(&opts.Pretty, "pretty", false, "Indent JSON output (default: on when stdout is a terminal)")

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Print or write variables derived during resolution",
		Long: `Prints the variables a build script should re-export, as dotenv lines.
When only PANTHEON_CMS_ENDPOINT is set this is the derived WPGRAPHQL_URL.
With --write-dir the lines are written to <dir>/cms.env instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(cmd.OutOrStdout(), &opts, environ)
		},
	}
	envCmd.Flags().StringVar(&opts.WriteDir, "write-dir", envOrDefault("CMSBRIDGE_WRITE_DIR", ""),
		"Directory for cms.env (empty = print to stdout)")

	root.AddCommand(resolve, envCmd)
	return root
}

func runResolve(w io.Writer, opts *options, environ []string) error {
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(opts, environ)
	if err != nil {
		return err
	}
	return output.Encode(w, cfg, format, opts.Pretty)
}

func runEnv(w io.Writer, opts *options, environ []string) error {
	cfg, err := resolveConfig(opts, environ)
	if err != nil {
		return err
	}

	if opts.WriteDir == "" {
		content, err := envfile.Render(cfg.Exports)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, content)
		return err
	}

	path, err := envfile.Write(opts.WriteDir, cfg.Exports)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"path": path,
		"vars": len(cfg.Exports),
	}).Info("Wrote env file")
	return nil
}

// resolveConfig builds the environment snapshot and resolves it.
func resolveConfig(opts *options, environ []string) (*config.NextConfig, error) {
	merged, err := config.LoadEnviron(environ, opts.EnvFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.WithField("path", opts.EnvFile).Debug("No dotenv file, using process environment only")
	}

	snap, err := config.ParseEnv(merged)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"mode":             snap.Mode,
		"graphql_url_set":  snap.GraphQLURL != "",
		"cms_endpoint_set": snap.CMSEndpoint != "",
		"image_domain_set": snap.ImageDomain != "",
		"upload_path_set":  snap.UploadPath != "",
	}).Debug("Parsed environment")

	cfg, err := config.Resolve(snap)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"backend_url": cfg.BackendURL(),
		"image_url":   cfg.ImageURL(),
	}).Debug("Resolved configuration")
	return cfg, nil
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetOutput(w)
	log.SetLevel(lvl)
	return nil
}

// isTerminal reports whether w is a terminal-backed file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tty.IsTerminal(f.Fd())
}

// envOrDefault returns the value of an env var, or fallback if unset.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
