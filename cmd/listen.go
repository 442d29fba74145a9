package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jsphweid/livechord/constants"
	"github.com/jsphweid/livechord/midi"
	"github.com/jsphweid/livechord/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	listenInterval time.Duration
	listenDebounce time.Duration
	listenOnChange bool
	listenHTTP     string
)

func init() {
	flags := listenCmd.Flags()
	flags.DurationVar(&listenInterval, "interval", 0, "how often to report the chord (default $LIVECHORD_POLL_INTERVAL or 1s)")
	flags.BoolVar(&listenOnChange, "on-change", false, "report only when the held notes change")
	flags.DurationVar(&listenDebounce, "debounce", 0, "quiet time before an on-change report (default $LIVECHORD_DEBOUNCE or 50ms)")
	flags.StringVar(&listenHTTP, "http", "", "also serve the chord API on this address")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen [PORT]",
	Short: "Names the chord held on a MIDI input",
	Long: `Listens to a MIDI input and prints the intervals and chord currently held.
PORT is the number shown by "ports" or part of the input's name. Without it the
first input that is not a virtual through port is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var selector string
		if len(args) == 1 {
			selector = args[0]
		}
		if listenInterval == 0 {
			listenInterval = constants.GetPollInterval()
		}
		if listenDebounce == 0 {
			listenDebounce = constants.GetDebounce()
		}
		return listen(cmd.Context(), selector, cmd.OutOrStdout())
	},
}

func listen(ctx context.Context, selector string, out io.Writer) error {
	defer midi.Close()

	in, err := midi.FindPort(selector)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess := session.New(nil)
	defer sess.Close()

	stop, err := midi.Listen(in, sess, func(error) {
		fmt.Fprintln(os.Stderr, "MIDI input lost, exiting.")
		cancel()
	})
	if err != nil {
		return err
	}
	defer stop()

	fmt.Fprintf(out, "Listening to MIDI port %s\nPress CTRL+C to exit.\n\n", in.String())

	if listenHTTP != "" {
		go func() {
			if err := serve(ctx, listenHTTP, NewRouter(sess)); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
				cancel()
			}
		}()
	}

	report := func(st session.State) {
		if st.Chord.Classified {
			printChord(out, st.Chord)
		}
	}

	if listenOnChange {
		stopWatch := sess.Watch(listenDebounce, report)
		defer stopWatch()
		<-ctx.Done()
	} else {
		err = sess.Poll(ctx, listenInterval, func(st session.State, _ bool) { report(st) })
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	fmt.Fprintln(out, "\nExiting...")
	return nil
}
