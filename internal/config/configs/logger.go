package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the structured logger shared by the server and
// campaignctl. Level is one of debug, info, warn or error; Format is text
// (default) or json.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel converts the textual level into a slog.Level. "warning" and
// "err" are accepted as aliases; anything unknown means info.
func (c Logger) SlogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	switch name {
	case "warning":
		name = "warn"
	case "err":
		name = "error"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SlogFormat normalises the requested log format to "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// NewLogger builds a slog.Logger writing to w.
func (c Logger) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if c.SlogFormat() == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
