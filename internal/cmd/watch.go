package cmd

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoppxi/lume/internal/config"
	"github.com/hoppxi/lume/pkg/backlight"
)

// deviceRef hands the event loop the most recently selected device. The
// config watcher callback runs on viper's fsnotify goroutine, so the swap
// has to be synchronized against the loop's reads.
type deviceRef struct {
	mu  sync.Mutex
	dev *backlight.Device
}

func (r *deviceRef) get() *backlight.Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dev
}

func (r *deviceRef) set(dev *backlight.Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dev = dev
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Log brightness changes as they happen",
	Long: `watch subscribes to kernel uevents and logs every backlight change,
whoever caused it, until interrupted. It never writes to the device.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		dev, err := openDevice(cmd)
		if err != nil {
			return err
		}
		ref := &deviceRef{dev: dev}

		events, err := backlight.Events()
		if err != nil {
			return err
		}

		// pick up a changed device selection without restarting
		config.Watch(func() {
			next, err := openDevice(cmd)
			if err != nil {
				logrus.WithError(err).Warn("config changed but device could not be opened")
				return
			}
			ref.set(next)
			logrus.WithField("device", next.Name).Info("config changed, switched device")
		})

		info, err := ref.get().Info()
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"device":     info.Device,
			"brightness": info.Current,
			"percent":    info.Percent,
		}).Info("watching")

		for range events {
			info, err := ref.get().Info()
			if err != nil {
				logrus.WithError(err).Warn("could not read brightness")
				continue
			}
			logrus.WithFields(logrus.Fields{
				"device":     info.Device,
				"brightness": info.Current,
				"percent":    info.Percent,
			}).Info("brightness changed")
		}
		return nil
	},
}
