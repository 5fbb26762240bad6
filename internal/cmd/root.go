package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "lume [percent]",
	Version: Version,
	Short:   "Smoothly set the display backlight brightness",
	Long: `lume sets the display backlight through /sys/class/backlight.

percent must be a number between 0 and 100. A prefix of either - or + is
allowed. Without a prefix, the brightness gets set to the given
percentage. With the + prefix, the given percentage gets added to the
current brightness. With the - prefix, it gets subtracted. Without any
argument, brightness goes to 100%.

Any change happens stepwise with a small delay in between, so the
brightness fades instead of jumping.

You need permission to modify the backlight device in
/sys/class/backlight (on most distributions, membership in the video
group).`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSet,
}

func Execute() {
	rootCmd.SetArgs(guardDashNumber(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, friendlyMessage(err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprint(os.Stderr, rootCmd.UsageString())
		os.Exit(1)
	}
}

// guardDashNumber keeps an argument like "-22" from being eaten by flag
// parsing. It is a brightness step, so everything from it on becomes
// positional.
func guardDashNumber(args []string) []string {
	for i, a := range args {
		if len(a) > 1 && a[0] == '-' && a[1] >= '0' && a[1] <= '9' {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			out = append(out, args[i:]...)
			return out
		}
	}
	return args
}

func init() {
	rootCmd.PersistentFlags().StringP("device", "d", "", "backlight device name (default: first discovered)")
	rootCmd.Flags().Bool("no-fade", false, "apply the target brightness in a single step")
	rootCmd.Flags().Bool("notify", false, "show a desktop notification with the new level")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}
