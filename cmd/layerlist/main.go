package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	log *logrus.Logger

	logLevel  string
	logFormat string
}

func newLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)

	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	lvl, err := logrus.ParseLevel(level)

	if err != nil {
		return nil, err
	}

	log.SetLevel(lvl)
	return log, nil
}

func defaultLogLevel() string {
	if level := os.Getenv("LAYERLIST_LOG_LEVEL"); level != "" {
		return strings.ToLower(level)
	}
	return "info"
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "layerlist",
		Short: "Parse, format and validate layer list strings",
		Long: `layerlist works with the compact layer list notation used by layout tools,
for example "metal1 (1/0) via1 (2/0) metal2 (3/0) 1/0 99/42". Layers are
written as names, layer/datatype pairs, or names followed by a pair, and are
separated by blanks or commas.`,
		Version:      fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)

			if err != nil {
				return err
			}

			a.log = log
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", defaultLogLevel(), "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newParseCommand(a))
	cmd.AddCommand(newFormatCommand(a))
	cmd.AddCommand(newCheckCommand(a))
	cmd.AddCommand(newPresetsCommand(a))
	cmd.AddCommand(newWatchCommand(a))

	return cmd
}
