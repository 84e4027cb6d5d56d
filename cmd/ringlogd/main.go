// Command ringlogd is a small relay daemon demonstrating the intended
// deployment shape of the pipeline: many producers writing into one
// Logger, exactly one Worker draining it into a transmission medium,
// and Prometheus counters on the side.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/philipp01105/ringlog/core"
	"github.com/philipp01105/ringlog/logger"
	"github.com/philipp01105/ringlog/metrics"
	"github.com/philipp01105/ringlog/transmit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	var sink string
	var addr string
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "ringlogd",
		Short: "Run the ring-buffered log relay",
		Long: `Starts a Logger with a single drain worker, forwards queued lines to ` +
			`the configured sink (stdout, a TCP endpoint, or a websocket URL) and ` +
			`optionally serves Prometheus metrics. Emits a heartbeat so the pipeline ` +
			`has traffic to move.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			// CLI flags win over the config file.
			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "sink":
					cfg.Sink = sink
				case "addr":
					cfg.Addr = addr
				case "metrics-addr":
					cfg.MetricsAddr = metricsAddr
				}
			})
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "ringlog.toml", "path to TOML config")
	cmd.Flags().StringVar(&sink, "sink", "stdout", "transmission sink: stdout, tcp or ws")
	cmd.Flags().StringVar(&addr, "addr", "", "tcp host:port or ws:// URL for the sink")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "listen address for /metrics, empty disables")
	return cmd
}

func run(cfg fileConfig) error {
	tr, cleanup, err := buildTransmitter(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	logCfg := logger.Config{
		Range:        core.ParseRange(cfg.Range),
		UseTimestamp: cfg.UseTimestamp,
		UseColor:     cfg.UseColor,
		RingCapacity: cfg.RingCapacity,
	}
	if cfg.Echo {
		logCfg.Echo = os.Stderr
	}
	log := logger.New(logCfg)
	logger.SetDefault(log)

	w := logger.NewWorker(log, tr, logger.WorkerConfig{
		Interval: time.Duration(cfg.IntervalMS) * time.Millisecond,
	})
	defer w.Close()

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(metrics.NewCollector(log))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			// Metrics are auxiliary; a dead listener must not take
			// the relay down.
			http.ListenAndServe(cfg.MetricsAddr, mux)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("relay started, sink=%s capacity=%d", cfg.Sink, log.Capacity())

	heartbeat := time.NewTicker(time.Duration(cfg.HeartbeatMS) * time.Millisecond)
	defer heartbeat.Stop()

	seq := 0
	for {
		select {
		case <-heartbeat.C:
			seq++
			log.Infof("heartbeat seq=%d queued=%d", seq, log.Count())
		case <-ctx.Done():
			log.Infof("relay stopping after %d heartbeats", seq)
			return nil
		}
	}
}

// buildTransmitter maps the configured sink onto a Transmitter and a
// cleanup for whatever connection it holds.
func buildTransmitter(cfg fileConfig) (transmit.Transmitter, func(), error) {
	switch cfg.Sink {
	case "", "stdout":
		return transmit.Writer(os.Stdout), func() {}, nil
	case "tcp":
		if cfg.Addr == "" {
			return nil, nil, fmt.Errorf("tcp sink needs --addr host:port")
		}
		conn, err := net.DialTimeout("tcp", cfg.Addr, 5*time.Second)
		if err != nil {
			return nil, nil, fmt.Errorf("dial %s: %w", cfg.Addr, err)
		}
		return transmit.Writer(conn), func() { conn.Close() }, nil
	case "ws":
		if cfg.Addr == "" {
			return nil, nil, fmt.Errorf("ws sink needs --addr ws://host:port/path")
		}
		ws, err := transmit.DialWebSocket(cfg.Addr, 5*time.Second)
		if err != nil {
			return nil, nil, err
		}
		return ws, func() { ws.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}
}
