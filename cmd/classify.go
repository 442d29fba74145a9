package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/livechord/chord"
	"github.com/jsphweid/livechord/pitch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(shapesCmd)
}

var classifyCmd = &cobra.Command{
	Use:     "classify NOTE...",
	Short:   "Names the chord formed by the given notes",
	Long:    `Names the chord formed by the given notes, e.g. classify C4 E4 G4`,
	Example: "  livechord classify C4 E4 G4 A#4",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}
		printChord(cmd.OutOrStdout(), chord.Classify(notes))
		return nil
	},
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Lists the chord shapes that can be recognized",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range chord.DefaultAnalyzer.Shapes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.Quality, s.Intervals)
		}
	},
}

func parseNotes(names []string) ([]pitch.Pitch, error) {
	var res []pitch.Pitch
	for _, name := range names {
		p, err := pitch.Parse(name)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse note")
		}
		res = append(res, p)
	}
	return res, nil
}

func printChord(w io.Writer, res chord.Result) {
	if !res.Classified {
		fmt.Fprintln(w, "Chord: Unclassified (need at least 2 notes)")
		return
	}
	fmt.Fprintf(w, "Intervals: %s\n", res.Signature)
	fmt.Fprintf(w, "Chord: %s\n", res)
}
