package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current brightness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}

		info, err := dev.Info()
		if err != nil {
			return err
		}

		if asJson, _ := cmd.Flags().GetBool("json"); asJson {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("%s: %d/%d (%d%%)\n", info.Device, info.Current, info.Max, info.Percent)
		return nil
	},
}

func init() {
	getCmd.Flags().BoolP("json", "j", false, "output brightness info in JSON format")
}
