// Package eval previews camera detection schedules without running the
// monitor: it evaluates every camera in a cameras file at a given time
// and prints the outcome as a table.
package eval

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/clambin/go-common/charmer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vigilocam/detection-scheduler/internal/camera"
	"github.com/vigilocam/detection-scheduler/internal/detect"
)

var (
	Cmd = cobra.Command{
		Use:   "eval [cameras file]",
		Short: "Evaluate camera detection schedules",
		RunE:  evalCameras(os.Stdout, viper.GetViper()),
	}

	args = charmer.Arguments{
		"at": {Default: "", Help: "evaluation time, layout \"2006-01-02 15:04\" (default: now)"},
	}
)

func init() {
	_ = charmer.SetPersistentFlags(&Cmd, viper.GetViper(), args)
}

func evalCameras(w io.Writer, v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, args []string) error {
		now := time.Now()
		if at := v.GetString("at"); at != "" {
			var err error
			if now, err = time.ParseInLocation("2006-01-02 15:04", at, time.Local); err != nil {
				return fmt.Errorf("invalid evaluation time %q", at)
			}
		}
		filename := v.GetString("cameras")
		if len(args) > 0 {
			filename = args[0]
		}
		cfg, err := getCameras(filename)
		if err != nil {
			return err
		}
		evalConfiguration(cfg, now).writeTo(w)
		return nil
	}
}

func getCameras(filename string) (camera.Configuration, error) {
	var r io.ReadCloser
	var err error
	switch filename {
	case "-":
		r = os.Stdin
	default:
		if r, err = os.Open(filename); err != nil {
			return camera.Configuration{}, err
		}
		defer func() { _ = r.Close() }()
	}
	return camera.Load(r)
}

const formatString = "%-20s %-14s %-17s %-6s %s\n"

type results []result

func evalConfiguration(cfg camera.Configuration, now time.Time) results {
	r := make(results, 0, len(cfg.Cameras))
	for _, cam := range cfg.Cameras {
		r = append(r, evalCamera(cam, now))
	}
	return r
}

func evalCamera(cam camera.Camera, now time.Time) result {
	loc, err := cam.Location()
	if err != nil {
		loc = time.UTC
	}
	localNow := now.In(loc)

	r := result{
		camera:     cam.Name,
		until:      "-",
		zones:      fmt.Sprintf("%d/%d", len(cam.Zones.Enabled()), len(cam.Zones)),
		evaluation: detect.Evaluate(cam.Schedule, localNow),
	}
	if next, ok := detect.NextTransition(cam.Schedule, localNow); ok {
		r.until = next.Format("2006-01-02 15:04")
	}
	return r
}

func (r results) writeTo(w io.Writer) {
	if len(r) > 0 {
		_, _ = fmt.Fprintf(w, formatString, "CAMERA", "STATUS", "UNTIL", "ZONES", "REASON")
		for _, res := range r {
			res.writeTo(w)
		}
	}
}

type result struct {
	camera     string
	until      string
	zones      string
	evaluation detect.Evaluation
}

func (r result) writeTo(w io.Writer) {
	_, _ = fmt.Fprintf(w, formatString, r.camera, r.evaluation.Status, r.until, r.zones, r.evaluation.Reason)
}
