// Package monitor assembles and runs the detection scheduler runtime:
// poller, Prometheus exporter, health and preview endpoints, Slack
// notifications and the refresh controller.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clambin/go-common/slackbot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vigilocam/detection-scheduler/internal/bot"
	"github.com/vigilocam/detection-scheduler/internal/camera"
	"github.com/vigilocam/detection-scheduler/internal/collector"
	"github.com/vigilocam/detection-scheduler/internal/controller"
	"github.com/vigilocam/detection-scheduler/internal/health"
	"github.com/vigilocam/detection-scheduler/internal/notifier"
	"github.com/vigilocam/detection-scheduler/internal/poller"
	"github.com/vigilocam/detection-scheduler/internal/preview"
	"golang.org/x/sync/errgroup"
)

var Cmd = cobra.Command{
	Use:   "monitor",
	Short: "Monitor camera detection schedules and report changes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return run(ctx, viper.GetViper(), cmd.Root().Version, prometheus.DefaultRegisterer, slog.Default())
	},
}

func run(ctx context.Context, v *viper.Viper, version string, registry prometheus.Registerer, logger *slog.Logger) error {
	f, err := os.Open(v.GetString("cameras"))
	if err != nil {
		return fmt.Errorf("cameras: %w", err)
	}
	cfg, err := camera.Load(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	logger.Info("starting monitor", "version", version, "cameras", len(cfg.Cameras))
	defer logger.Info("monitor stopped")

	g, gCtx := errgroup.WithContext(ctx)
	for _, t := range makeTasks(v, cfg, version, registry, logger) {
		g.Go(func() error { return t.Run(gCtx) })
	}
	return g.Wait()
}

type task interface {
	Run(ctx context.Context) error
}

func makeTasks(v *viper.Viper, cfg camera.Configuration, version string, registry prometheus.Registerer, l *slog.Logger) []task {
	var tasks []task

	// Poller
	p := poller.New(cfg.Cameras, v.GetDuration("poller.interval"), l.With("component", "poller"))
	tasks = append(tasks, p)

	// Collector
	coll := &collector.Collector{Poller: p, Logger: l.With("component", "collector")}
	registry.MustRegister(coll)
	tasks = append(tasks, coll)

	// Prometheus server
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	tasks = append(tasks, newHTTPServer(v.GetString("exporter.addr"), m))

	// Health and snapshot preview endpoints
	h := health.New(p, l.With("component", "health"))
	tasks = append(tasks, h)

	requestMetrics := preview.NewSnapshotMetrics("detsched", "preview", prometheus.Labels{"application": "detsched"})
	registry.MustRegister(requestMetrics)
	snapshots := preview.New(v.GetInt("preview.cache.size"), v.GetDuration("preview.cache.ttl"), requestMetrics)

	r := http.NewServeMux()
	r.Handle("/health", h)
	r.Handle("GET /preview/{camera}", &preview.Handler{Client: snapshots, Cameras: cfg, Logger: l.With("component", "preview")})
	tasks = append(tasks, newHTTPServer(v.GetString("health.addr"), r))

	// Notifiers, with Slack and the bot when a token is configured
	notifiers := notifier.Notifiers{notifier.SLogNotifier{Logger: l.With("component", "notifier")}}
	if token := v.GetString("slack.token"); token != "" {
		b := slackbot.New(token,
			slackbot.WithName("detsched "+version),
			slackbot.WithLogger(l.With(slog.String("component", "slackbot"))),
		)
		notifiers = append(notifiers, &notifier.SlackNotifier{
			Slack:   b,
			Channel: v.GetString("slack.channel"),
			Logger:  l.With("component", "notifier"),
		})
		tasks = append(tasks, b, bot.New(b, p, l.With(slog.String("component", "bot"))))
	}

	// Controller
	tasks = append(tasks, controller.New(p, notifiers, l.With("component", "controller")))

	return tasks
}
