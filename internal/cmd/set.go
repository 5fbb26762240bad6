package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	"github.com/hoppxi/lume/internal/config"
	"github.com/hoppxi/lume/internal/notify"
	"github.com/hoppxi/lume/pkg/backlight"
	"github.com/hoppxi/lume/pkg/percent"
)

// runSet is the root command: fade the backlight to the requested level.
func runSet(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	dev, err := openDevice(cmd)
	if err != nil {
		return err
	}

	max, err := dev.Max()
	if err != nil {
		return err
	}
	current, err := dev.Current()
	if err != nil {
		return err
	}

	// no argument means full brightness
	directive := percent.Directive{Relation: percent.Absolute, Value: 100}
	if len(args) == 1 {
		if directive, err = percent.Parse(args[0]); err != nil {
			return err
		}
	}

	floor := cfg.GetUint("floor")
	target := backlight.Target(directive, current, max, floor)

	noFade, _ := cmd.Flags().GetBool("no-fade")
	if noFade || !cfg.GetBool("fade.enabled") {
		if target != current {
			if err := dev.Write(target); err != nil {
				return err
			}
		}
	} else {
		delay := cfg.GetDuration("fade.delay")
		if err := backlight.Fade(dev, current, target, delay, clock.RealClock{}); err != nil {
			return err
		}
	}

	wantNotify, _ := cmd.Flags().GetBool("notify")
	if (wantNotify || cfg.GetBool("notify")) && max > 0 {
		pct := int(target * 100 / max)
		if err := notify.Brightness(dev.Name, pct); err != nil {
			// the brightness did change, a missing notification daemon
			// is not worth failing over
			logrus.WithError(err).Debug("notification failed")
		}
	}

	return nil
}

// openDevice resolves the backlight device from the --device flag, then
// the config, then discovery.
func openDevice(cmd *cobra.Command) (*backlight.Device, error) {
	name, _ := cmd.Flags().GetString("device")
	if name == "" {
		name = config.Load().GetString("device")
	}
	if name != "" {
		return backlight.Open(name)
	}
	return backlight.Discover()
}
