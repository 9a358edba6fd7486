package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	canvasHeight   int
	canvasWidth    int
	port           int
	prefix         string
	profile        bool
	seed           int64
	sessionTimeout time.Duration
	strokeRate     float64
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool
	wordsFile      string
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.canvasWidth < 1 || c.canvasHeight < 1 {
		return fmt.Errorf("invalid canvas size (both dimensions must be positive): %dx%d", c.canvasWidth, c.canvasHeight)
	}
	if c.strokeRate < 0 {
		return fmt.Errorf("invalid stroke rate (must not be negative): %v", c.strokeRate)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SKETCHBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "sketchbox",
		Short:         "A draw-the-word party game, served as a single webapp.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: SKETCHBOX_BIND)")
	fs.IntVar(&cfg.canvasHeight, "canvas-height", 600, "height of the drawing surface in pixels (env: SKETCHBOX_CANVAS_HEIGHT)")
	fs.IntVar(&cfg.canvasWidth, "canvas-width", 800, "width of the drawing surface in pixels (env: SKETCHBOX_CANVAS_WIDTH)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: SKETCHBOX_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: SKETCHBOX_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: SKETCHBOX_PROFILE)")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for word selection and scoring, 0 for time based (env: SKETCHBOX_SEED)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle game sessions are ended (env: SKETCHBOX_SESSION_TIMEOUT)")
	fs.Float64Var(&cfg.strokeRate, "stroke-rate", 240, "pointer moves accepted per second per connection, 0 for unlimited (env: SKETCHBOX_STROKE_RATE)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: SKETCHBOX_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: SKETCHBOX_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: SKETCHBOX_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: SKETCHBOX_VERSION)")
	fs.StringVarP(&cfg.wordsFile, "words", "w", "", "word pool file (yaml, json or toml) with a tiers map (env: SKETCHBOX_WORDS)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("sketchbox v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
