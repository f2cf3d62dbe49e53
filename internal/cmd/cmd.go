// Package cmd implements the detsched command line interface.
package cmd

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/clambin/go-common/charmer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vigilocam/detection-scheduler/internal/cmd/config"
	"github.com/vigilocam/detection-scheduler/internal/cmd/eval"
	"github.com/vigilocam/detection-scheduler/internal/cmd/monitor"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "detsched",
		Short: "Motion detection scheduler for security cameras",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			var opts slog.HandlerOptions
			if viper.GetBool("debug") {
				opts.Level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &opts)))
		},
	}

	args = charmer.Arguments{
		"debug":              {Default: false, Help: "Log debug messages"},
		"cameras":            {Default: "cameras.yaml", Help: "Camera configuration file"},
		"poller.interval":    {Default: 30 * time.Second, Help: "Poller interval"},
		"exporter.addr":      {Default: ":9090", Help: "Address of Prometheus exporter"},
		"health.addr":        {Default: ":8080", Help: "Address of /health endpoint"},
		"preview.cache.size": {Default: 1 << 20, Help: "Snapshot cache size (bytes)"},
		"preview.cache.ttl":  {Default: time.Minute, Help: "Snapshot cache retention"},
		"slack.token":        {Default: "", Help: "Slack bot token"},
		"slack.channel":      {Default: "", Help: "Slack channel for notifications. Empty sends to all joined channels"},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	_ = charmer.SetPersistentFlags(&RootCmd, viper.GetViper(), args)
	RootCmd.AddCommand(&monitor.Cmd, &eval.Cmd, &config.Cmd)
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/detsched/")
		viper.AddConfigPath("$HOME/.detsched")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("DETSCHED")
	viper.AutomaticEnv()

	// eval and config work fine on defaults; only a malformed file is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
	}
}
