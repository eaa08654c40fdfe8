// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/medvision/internal/api"
	"github.com/pdiddy/medvision/internal/flow"
	"github.com/pdiddy/medvision/internal/journal"
	"github.com/pdiddy/medvision/internal/render"
	"github.com/pdiddy/medvision/pkg/types"
)

// errReported marks a failure whose message the user has already seen.
var errReported = errors.New("flow failed")

func setDefaults() {
	viper.SetDefault("api_base_url", "http://localhost:8000")
	viper.SetDefault("timeout", 30*time.Second)
	viper.SetDefault("user_agent", "medvision/"+version)
	viper.SetDefault("demo_delay", flow.DefaultDemoDelay)
	viper.SetDefault("top_k", flow.DefaultTopK)
	viper.SetDefault("journal_path", ".medvision/journal.db")
	viper.SetDefault("log_level", "warn")
}

// clientConfig reads the service settings from viper.
func clientConfig() types.ClientConfig {
	return types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		BaseURL:     viper.GetString("api_base_url"),
		TopK:        viper.GetInt("top_k"),
		DemoDelay:   viper.GetDuration("demo_delay"),
		JournalPath: viper.GetString("journal_path"),
	}
}

// newLogger writes human-readable logs to stderr at the configured level.
// An unknown level falls back to warn.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("log_level")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

// session bundles what a flow command needs: the service client, the
// journal, and the shared controller options.
type session struct {
	cfg     types.ClientConfig
	logger  zerolog.Logger
	client  *api.Client
	journal *journal.Store
	opts    flow.Options
}

// newSession builds the client and opens the journal. A journal that
// cannot be opened is logged and skipped; it never blocks a dispatch.
func newSession(cmd *cobra.Command) *session {
	cfg := clientConfig()
	logger := newLogger()
	s := &session{
		cfg:    cfg,
		logger: logger,
		client: api.NewClient(cfg, nil, logger),
		opts: flow.Options{
			Notifier: stderrNotifier(cmd.ErrOrStderr()),
			Logger:   logger,
		},
	}

	noJournal, _ := cmd.Flags().GetBool("no-journal")
	if noJournal || cfg.JournalPath == "" {
		return s
	}
	store, err := journal.Open(cfg.JournalPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.JournalPath).Msg("journal disabled")
		return s
	}
	s.journal = store
	s.opts.Recorder = store
	return s
}

func (s *session) Close() {
	if s.journal != nil {
		if err := s.journal.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("closing journal")
		}
	}
}

// stderrNotifier prints transient notices on w.
func stderrNotifier(w io.Writer) flow.Notifier {
	return flow.NotifierFunc(func(kind flow.NoticeKind, message string) {
		switch kind {
		case flow.NoticeError:
			fmt.Fprintf(w, "✗ %s\n", message)
		default:
			fmt.Fprintf(w, "✓ %s\n", message)
		}
	})
}

// outputFormat resolves the --json and --yaml flags.
func outputFormat(cmd *cobra.Command) (render.Format, error) {
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	switch {
	case asJSON && asYAML:
		return "", fmt.Errorf("--json and --yaml are mutually exclusive")
	case asJSON:
		return render.FormatJSON, nil
	case asYAML:
		return render.FormatYAML, nil
	default:
		return render.FormatTable, nil
	}
}

// runFlow dispatches in on c, waits for the outcome, and writes it to
// stdout. loading is shown on stderr while the request is in flight.
func runFlow[In, T any](cmd *cobra.Command, s *session, c *flow.Controller[In, T], in In, loading string, table func(io.Writer, T)) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	stderr := cmd.ErrOrStderr()
	unsubscribe := c.Subscribe(func(st flow.State[T]) {
		s.logger.Debug().Str("flow", c.Name()).Str("phase", string(st.Phase)).Msg("transition")
		if st.Loading() && format == render.FormatTable {
			fmt.Fprintln(stderr, loading)
		}
	})
	defer unsubscribe()

	ctx := cmd.Context()
	c.Dispatch(ctx, in)
	st, err := c.Wait(ctx)
	if err != nil {
		return fmt.Errorf("%s interrupted: %w", c.Name(), err)
	}
	if st.Failed() {
		return errReported
	}

	out := cmd.OutOrStdout()
	if format == render.FormatTable {
		table(out, st.Data)
		return nil
	}
	return render.Encode(out, format, st.Data)
}
