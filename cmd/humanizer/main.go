// Package main is the entry point for the web3 error humanizer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer"
	humanizerDI "github.com/halilatilla/web3-error-humanizer/business/humanizer/di"
	"github.com/halilatilla/web3-error-humanizer/business/humanizer/domain"
	"github.com/halilatilla/web3-error-humanizer/internal/apm"
	"github.com/halilatilla/web3-error-humanizer/internal/config"
	"github.com/halilatilla/web3-error-humanizer/internal/health"
	"github.com/halilatilla/web3-error-humanizer/internal/logger"
	"github.com/halilatilla/web3-error-humanizer/internal/metrics"
	"github.com/halilatilla/web3-error-humanizer/internal/monolith"
	"github.com/halilatilla/web3-error-humanizer/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "", "Path to configuration file")
	jsonOut := flag.Bool("json", false, "Print the full resolution as JSON (one-shot mode)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("web3-error-humanizer %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// An error argument (or piped stdin) selects one-shot mode; otherwise
	// the interactive explorer starts.
	input, oneShot := readInput()

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(ctx, *configPath, input, oneShot, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// readInput returns the error text to resolve in one-shot mode. Arguments
// win over piped stdin.
func readInput() (string, bool) {
	if flag.NArg() > 0 {
		return strings.Join(flag.Args(), " "), true
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err == nil && len(strings.TrimSpace(string(data))) > 0 {
			return strings.TrimSpace(string(data)), true
		}
	}

	return "", false
}

// traceProviderFor maps the configured trace provider name to its apm
// provider. Unknown names fall through to the empty provider.
func traceProviderFor(name string) apm.Provider {
	switch name {
	case "zipkin":
		return apm.ZipkinProvider
	case "otlp_grpc":
		return apm.OTLPGRPCProvider
	case "otlp_http":
		return apm.OTLPHTTPProvider
	case "console":
		return apm.ConsoleProvider
	default:
		return apm.EmptyProvider
	}
}

func run(ctx context.Context, configPath, input string, oneShot, jsonOut bool) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logLevel := logger.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		logLevel = logger.LevelDebug
	case "warn":
		logLevel = logger.LevelWarn
	case "error":
		logLevel = logger.LevelError
	}

	var log *logger.Logger
	if oneShot {
		log = logger.New(os.Stderr, logLevel, cfg.App.Name, nil)
	} else {
		// In TUI mode, suppress logs (discard output)
		log = logger.New(io.Discard, logLevel, cfg.App.Name, nil)
	}

	// Initialize observability if enabled
	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}
		if cfg.Telemetry.OTLPHeaders != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", cfg.Telemetry.OTLPHeaders)
		}

		traceProvider = apm.NewTraceProvider(log,
			apm.WithProvider(traceProviderFor(cfg.Telemetry.TraceProvider), log))
		log.Info(ctx, "tracing initialized",
			"provider", cfg.Telemetry.TraceProvider, "endpoint", cfg.Telemetry.OTLPEndpoint)

		metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.NewPrometheusConfig()),
		)

		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(cfg.Telemetry.PrometheusPort)))
		log.Info(ctx, "prometheus metrics server started", "port", cfg.Telemetry.PrometheusPort)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	// Create monolith (application container)
	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}
	defer mono.Close()

	// Register and start modules
	modules := []monolith.Module{
		&humanizer.Module{},
	}
	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}
	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}

	resolver := humanizerDI.GetResolver(mono.Services())

	if oneShot {
		result := resolver.HumanizeDetailed(ctx, input, domain.Context{})
		if jsonOut {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}
		fmt.Println(result.Message)
		return nil
	}

	// Interactive mode keeps the health server up alongside the TUI.
	healthServer := health.NewServer(cfg.Telemetry.HealthPort, version)
	healthServer.RegisterCheck("dictionary", func(ctx context.Context) (bool, string) {
		n := mono.Dictionary().Len()
		if n == 0 {
			return false, "pattern dictionary is empty"
		}
		return true, fmt.Sprintf("%d patterns loaded", n)
	})
	healthServer.RegisterCheck("ai", func(ctx context.Context) (bool, string) {
		if !cfg.AI.Enabled() {
			return true, "ai backend disabled"
		}
		return true, "ai backend configured: " + cfg.AI.Model
	})
	if err := healthServer.Start(); err != nil {
		log.Warn(ctx, "failed to start health server", "error", err)
	}
	defer healthServer.Stop(ctx)

	return ui.Run(func(ctx context.Context, raw string) domain.HumanizedResult {
		return resolver.HumanizeDetailed(ctx, raw, domain.Context{})
	})
}
