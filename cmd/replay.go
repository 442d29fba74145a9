package cmd

import (
	"fmt"

	"github.com/jsphweid/livechord/chord"
	"github.com/jsphweid/livechord/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(replayCmd)
}

var replayCmd = &cobra.Command{
	Use:   "replay FILE.mid",
	Short: "Prints the chord changes of a MIDI file",
	Long:  `Plays the note events of a Standard MIDI File through the analyzer and prints every change of chord.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		changes, err := chord.Replay(parsed)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range changes {
			fmt.Fprintf(out, "%9.3fs  %-28s %s\n", c.Offset.Seconds(), c.Result, c.Result.Signature)
		}
		return nil
	},
}
