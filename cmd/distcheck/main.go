// Command distcheck runs the distance conformance suite on this machine.
//
// Configuration is read from DISTANCES_CONFORMANCE_* variables and optional
// .env files; see package conformance. The process exits with status 1 when
// any check fails.
//
//	distcheck -env ci.env -log-format json -metrics-addr :9090
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/distances"
	"github.com/hupe1980/distances/conformance"
	"github.com/hupe1980/distances/internal/simd"
)

func main() {
	var (
		envFiles    = flag.String("env", "", "comma-separated .env files to load")
		logFormat   = flag.String("log-format", "text", "log format: text or json")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn or error")
		metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address")
		info        = flag.Bool("info", false, "print CPU capabilities as JSON and exit")
	)
	flag.Parse()

	if *info {
		if err := json.NewEncoder(os.Stdout).Encode(simd.Info()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	passed, err := run(ctx, *envFiles, *logFormat, *logLevel, *metricsAddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "distcheck:", err)
		os.Exit(2)
	}
	if !passed {
		os.Exit(1)
	}
}

func run(ctx context.Context, envFiles, logFormat, logLevel, metricsAddr string) (bool, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return false, err
	}

	var logger *distances.Logger
	switch logFormat {
	case "json":
		logger = distances.NewJSONLogger(level)
	case "text":
		logger = distances.NewTextLogger(level)
	default:
		return false, fmt.Errorf("unknown log format %q", logFormat)
	}

	var files []string
	if envFiles != "" {
		files = strings.Split(envFiles, ",")
	}
	cfg, err := conformance.LoadConfig(files...)
	if err != nil {
		return false, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	collector, err := conformance.NewPrometheusCollector(reg)
	if err != nil {
		return false, err
	}

	if metricsAddr != "" {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorContext(ctx, "metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	store, err := conformance.OpenFixtureStore(ctx, cfg)
	if err != nil {
		return false, err
	}

	cpu := simd.Info()
	logger.InfoContext(ctx, "starting conformance run",
		"cpu", cpu.Brand,
		"isa", cpu.ISA.String(),
		"lanes", cpu.Lanes,
		"accelerated", cpu.Accelerated,
		"dimensions", cfg.Dimensions,
		"cardinality", cfg.Cardinality,
	)

	opts := []conformance.Option{
		conformance.WithConfig(cfg),
		conformance.WithFixtureStore(store),
		conformance.WithLogger(logger),
		conformance.WithMetricsCollector(collector),
	}

	passed := true
	for _, dtype := range cfg.DTypes {
		var (
			report *conformance.SuiteReport
			err    error
		)
		switch strings.TrimSpace(dtype) {
		case "float32":
			report, err = conformance.Suite[float32](ctx, opts...)
		case "float64":
			report, err = conformance.Suite[float64](ctx, opts...)
		default:
			return false, fmt.Errorf("unsupported dtype %q", dtype)
		}
		if err != nil {
			return false, err
		}
		fmt.Println(report)
		passed = passed && report.Passed()
	}
	return passed, nil
}
