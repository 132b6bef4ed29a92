package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger.
var Log *logrus.Logger

// Init configures the global logger from the environment.
// Call it once at startup and from TestMain.
//
//	LOG_LEVEL  - logrus level name, "info" by default
//	LOG_FORMAT - "json" or "text"
//	LOG_FILE   - append to this file instead of stderr
//
// The terminal front end owns stdout, so logs never go there.
func Init() {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	var out io.Writer = os.Stderr
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			Log.WithError(err).WithField("path", path).Warn("cannot open log file, using stderr")
		} else {
			out = f
		}
	}
	Log.SetOutput(out)
}

// Discard silences the global logger. Used by the terminal front end when
// no LOG_FILE is configured.
func Discard() {
	if Log == nil {
		Init()
	}
	Log.SetOutput(io.Discard)
}
