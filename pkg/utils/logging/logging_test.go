package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rebutly/rebutly/pkg/utils/logging"
)

func TestParseFormat(t *testing.T) {
	format, err := logging.ParseFormat("console")
	gt.NoError(t, err)
	gt.Value(t, format).Equal(logging.FormatConsole)

	format, err = logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Value(t, format).Equal(logging.FormatJSON)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		level, err := logging.ParseLevel(name)
		gt.NoError(t, err)
		gt.Value(t, level).Equal(want)
	}

	_, err := logging.ParseLevel("verbose")
	gt.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn, logging.FormatJSON)

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	gt.Bool(t, strings.Contains(out, "hidden")).False()
	gt.Bool(t, strings.Contains(out, "visible")).True()
}

func TestSecretMasking(t *testing.T) {
	type credentials struct {
		User  string
		Token string `masq:"secret"`
	}

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	logger.Info("login", "creds", credentials{User: "alice", Token: "super-secret-token"})

	out := buf.String()
	gt.Bool(t, strings.Contains(out, "alice")).True()
	gt.Bool(t, strings.Contains(out, "super-secret-token")).False()
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	gt.Value(t, logging.From(ctx)).Equal(logging.Default())

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	ctx = logging.With(ctx, logger)
	gt.Value(t, logging.From(ctx)).Equal(logger)
}
