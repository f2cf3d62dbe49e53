// Package config shows the camera configuration as the runtime sees it:
// loaded, legacy schedules migrated and validated.
package config

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vigilocam/detection-scheduler/internal/camera"
)

var Cmd = cobra.Command{
	Use:   "config [cameras file]",
	Short: "Show the normalized camera configuration",
	RunE:  showConfig(os.Stdout, viper.GetViper()),
}

type Encoder interface {
	Encode(any) error
}

// ShowConfig loads a cameras file and writes the normalized result.
func ShowConfig(r io.Reader, e Encoder) error {
	cfg, err := camera.Load(r)
	if err != nil {
		return err
	}
	return e.Encode(cfg)
}

func showConfig(w io.Writer, v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, args []string) error {
		filename := v.GetString("cameras")
		if len(args) > 0 {
			filename = args[0]
		}
		var r io.ReadCloser
		var err error
		switch filename {
		case "-":
			r = os.Stdin
		default:
			if r, err = os.Open(filename); err != nil {
				return err
			}
			defer func() { _ = r.Close() }()
		}
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return ShowConfig(r, e)
	}
}
