package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoppxi/lume/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pathOnly, _ := cmd.Flags().GetBool("path"); pathOnly {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		}

		path, err := config.WriteDefault()
		if errors.Is(err, os.ErrExist) {
			fmt.Printf("Config already exists at %s, leaving it alone.\n", path)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolP("path", "p", false, "print the config file path and exit")
}
