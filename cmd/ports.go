package cmd

import (
	"fmt"

	"github.com/jsphweid/livechord/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists MIDI inputs",
	Long:  `Lists MIDI inputs. The number or part of the name can be passed to listen.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		defer midi.Close()
		ports := midi.Ports()
		if len(ports) == 0 {
			fmt.Println("No MIDI inputs were found. Connect a MIDI device and try again.")
			return
		}
		fmt.Println("Available MIDI inputs are:")
		for i, name := range ports {
			fmt.Printf("%d. %s\n", i+1, name)
		}
	},
}
