package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/livechord/constants"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "livechord",
	Short: "Names the chord held on a MIDI keyboard",
	Long: `Tracks the notes held on a MIDI input, works out the intervals from the
lowest note and names the chord they form, e.g. "C Major" or "D Minor 7th".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every note event")
}

func configureLogging() error {
	level := constants.GetLogLevel()
	if debug {
		level = "debug"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "LIVECHORD_LOG_LEVEL")
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	cobra.CheckErr(err)
}
