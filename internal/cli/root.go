package cli

import (
	"log/slog"
	"os"

	"github.com/me/jobseq/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking JOBSEQ_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("JOBSEQ_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the jobseq CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jobseq",
		Short: "jobseq: job sequencing with deadlines",
		Long:  "jobseq picks and orders unit-time jobs to maximize profit without missing deadlines.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(flagLogLevel), flagLogFormat, cmd.ErrOrStderr())
			client = NewClient(flagServer, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "jobseq server URL (or JOBSEQ_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSolveCmd(),
		newRunsCmd(),
		newVersionCmd(),
	)

	return root
}
