// Command flowtopic-demo drives a small producer/consumer workload
// against a flowtopic.Topic so the library's contract can be watched
// end to end. It is a runnable example, not part of the library: it
// only ever calls through Topic's public operations, the way
// original_source/main.py only ever calls through TopicExt.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"

	"github.com/flowtopic/flowtopic"
	"github.com/flowtopic/flowtopic/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML or TOML TopicConfig (optional)")
		fanout     = flag.Bool("fanout", false, "run the demo topic in fan-out mode")
		runtime    = flag.Duration("runtime", 8*time.Second, "how long to run before shutting down")
		httpAddr   = flag.String("http", "", "address to serve /stats and /healthz on, e.g. :8080 (optional)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := defaultConfig(*fanout)
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		if err := config.ApplyEnvOverrides(loaded, os.Environ()); err != nil {
			logger.Error("failed to apply env overrides", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	s := newStats()
	topic := buildTopic(cfg, logger)
	defer topic.Teardown()

	ctx, cancel := context.WithTimeout(context.Background(), *runtime)
	defer cancel()

	if cfg.Fanout {
		runFanoutDemo(ctx, topic, s, logger)
	} else {
		runWorkQueueDemo(ctx, topic, s, logger)
	}

	c := cron.New()
	if _, err := c.AddFunc("@every 2s", func() { printStats(logger, topic, s) }); err != nil {
		logger.Error("failed to schedule stats reporter", "error", err)
	} else {
		c.Start()
		defer c.Stop()
	}

	var srv *http.Server
	if *httpAddr != "" {
		srv = startHTTPServer(*httpAddr, topic, s, logger)
		defer srv.Shutdown(context.Background())
	}

	<-ctx.Done()
	printStats(logger, topic, s)
}

func defaultConfig(fanout bool) *config.TopicConfig {
	capacity := 120
	return &config.TopicConfig{
		Name:           "demo",
		Capacity:       &capacity,
		TTL:            5 * time.Second,
		Fanout:         fanout,
		EnableReaper:   true,
		ReaperInterval: 250 * time.Millisecond,
	}
}

func buildTopic(cfg *config.TopicConfig, logger *slog.Logger) *flowtopic.Topic {
	tc := flowtopic.Config{
		TTL:            cfg.TTL,
		Fanout:         cfg.Fanout,
		EnableReaper:   cfg.EnableReaper,
		ReaperInterval: cfg.ReaperInterval,
		Observer: func(ctx context.Context, ev cloudevents.Event) {
			logger.Debug("topic event", "type", ev.Type(), "source", ev.Source())
		},
	}
	if cfg.Capacity != nil {
		tc.Capacity = *cfg.Capacity
	}
	return flowtopic.NewTopic(cfg.Name, tc)
}

func runWorkQueueDemo(ctx context.Context, topic *flowtopic.Topic, s *stats, logger *slog.Logger) {
	for i := 1; i <= 2; i++ {
		go runProducer(ctx, topic, fmt.Sprintf("prod-%d", i), int64(i))
	}
	for j := 1; j <= 2; j++ {
		go runWorkQueueConsumer(ctx, topic, fmt.Sprintf("cons-%d", j), s)
	}
	logger.Info("demo running in work-queue mode")
}

func runFanoutDemo(ctx context.Context, topic *flowtopic.Topic, s *stats, logger *slog.Logger) {
	for i := 1; i <= 2; i++ {
		go runProducer(ctx, topic, fmt.Sprintf("prod-%d", i), int64(i))
	}
	for _, name := range []string{"alice", "bob"} {
		sub, err := topic.Subscribe(name, 50)
		if err != nil {
			logger.Error("failed to subscribe", "name", name, "error", err)
			continue
		}
		go runFanoutConsumer(ctx, topic, sub, name, s)
	}
	logger.Info("demo running in fan-out mode")
}

func printStats(logger *slog.Logger, topic *flowtopic.Topic, s *stats) {
	snap := s.snapshot()
	logger.Info("stats",
		"topic_size", topic.Size(),
		"by_subscriber", topic.SizesBySubscriber(),
		"worker_processed", snap.WorkerProcessed,
		"uptime_seconds", fmt.Sprintf("%.1f", snap.UptimeSeconds),
	)
}

func startHTTPServer(addr string, topic *flowtopic.Topic, s *stats, logger *slog.Logger) *http.Server {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		snap := s.snapshot()
		payload := map[string]interface{}{
			"topic_size":    topic.Size(),
			"by_subscriber": topic.SizesBySubscriber(),
			"stats":         snap,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	})

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server stopped", "error", err)
		}
	}()
	return srv
}
