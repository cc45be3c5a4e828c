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
	answerGrace   time.Duration
	bind          string
	intermission  time.Duration
	port          int
	prefix        string
	profile       bool
	questionCount int
	questionTime  time.Duration
	tlsCert       string
	tlsKey        string
	verbose       bool
	version       bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.questionTime <= 0 || c.answerGrace < 0 || c.intermission < 0 {
		return errors.New("round durations must not be negative")
	}
	if c.questionCount < 1 {
		return fmt.Errorf("invalid question count (must be at least 1): %d", c.questionCount)
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
	v.SetEnvPrefix("HEADTOHEAD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "head-to-head-api",
		Short:         "A real-time multiplayer trivia backend with fuzzy answer matching.",
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

	fs.DurationVar(&cfg.answerGrace, "answer-grace", 5*time.Second, "extra time answers are accepted after a question ends (env: HEADTOHEAD_ANSWER_GRACE)")
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: HEADTOHEAD_BIND)")
	fs.DurationVar(&cfg.intermission, "intermission", 10*time.Second, "pause between questions (env: HEADTOHEAD_INTERMISSION)")
	fs.IntVarP(&cfg.port, "port", "p", 9090, "port to listen on (env: HEADTOHEAD_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: HEADTOHEAD_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: HEADTOHEAD_PROFILE)")
	fs.IntVar(&cfg.questionCount, "question-count", 10, "maximum questions asked per game (env: HEADTOHEAD_QUESTION_COUNT)")
	fs.DurationVar(&cfg.questionTime, "question-time", 30*time.Second, "time each question stays open (env: HEADTOHEAD_QUESTION_TIME)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: HEADTOHEAD_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: HEADTOHEAD_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: HEADTOHEAD_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: HEADTOHEAD_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("head-to-head-api v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
