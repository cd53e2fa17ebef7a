package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. Unknown levels fall back to info;
// format "json" selects the JSON formatter, anything else the text one.
func New(level, format string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(parseLevel(level))

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}
	return log
}

func parseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
