package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoppxi/lume/pkg/backlight"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List backlight devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := backlight.List()
		if err != nil {
			return err
		}

		infos := make([]*backlight.Info, 0, len(devices))
		for _, dev := range devices {
			info, err := dev.Info()
			if err != nil {
				return err
			}
			infos = append(infos, info)
		}

		if asJson, _ := cmd.Flags().GetBool("json"); asJson {
			data, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		for _, info := range infos {
			fmt.Printf("%s: %d/%d (%d%%)\n", info.Device, info.Current, info.Max, info.Percent)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolP("json", "j", false, "output device list in JSON format")
}
