// Package hostlog provides the structured logger used outside the engine
// package. The engine itself never logs; everything in cmd/coupd and
// internal/... routes through here instead.
package hostlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus.Logger configured for the host service: JSON output
// suitable for ingestion, level read from the COUPD_LOG_LEVEL env var by the
// caller (see hostconfig.Config.LogLevel) and falling back to info when it
// does not parse.
func New(level string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)
	return l
}

// Table returns a logger scoped to a single table, carrying its ID as a
// structured field on every entry.
func Table(l *logrus.Logger, tableID string) *logrus.Entry {
	return l.WithField("table_id", tableID)
}

// Player further scopes a table-scoped entry to one player.
func Player(e *logrus.Entry, playerIdx int) *logrus.Entry {
	return e.WithField("player", playerIdx)
}
