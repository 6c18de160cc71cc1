package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bizvet/bizvet/internal/config"
	"github.com/bizvet/bizvet/internal/health"
	"github.com/bizvet/bizvet/internal/scheduler"
	"github.com/bizvet/bizvet/internal/server"
	"github.com/bizvet/bizvet/pkg/constants"
	"github.com/bizvet/bizvet/pkg/errtrack"
	"github.com/bizvet/bizvet/pkg/output"
	"github.com/bizvet/bizvet/pkg/tool"
	"github.com/bizvet/bizvet/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/joho/godotenv/autoload"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	operation := flag.String("operation", "", "financial operation to run once (npv, irr, payback, break_even, roi, projection, unit_economics)")
	paramsJSON := flag.String("params", "{}", "JSON parameters for -operation")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serveMode := flag.Bool("server", false, "run the HTTP tool server")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	addr := flag.String("addr", "", "listen address override for -server")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	// Load the config file when present. A missing default config falls back
	// to built-in defaults; an explicitly requested file must exist.
	conf := &config.Configuration{}
	if _, statErr := os.Stat(*configLocation); statErr == nil {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
		conf = loaded
	} else if *configLocation != constants.DefaultConfigFile {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, statErr)
		return
	}

	// In server mode the server config's logging section, when set, takes
	// precedence over the app config.
	loggingConf := conf.Logging
	var serverConf *server.Config
	if *serveMode {
		loaded, err := server.LoadConfig(*serverConfigLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *serverConfigLocation, err)
			return
		}
		serverConf = loaded
		if serverConf.Logging != (config.LoggingConfig{}) {
			loggingConf = serverConf.Logging
		}
		if *addr != "" {
			serverConf.Address = *addr
		}
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(loggingConf, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serveMode {
		runServer(logger, conf, serverConf)
		return
	}

	if *operation == "" {
		logger.Fatal("no operation specified; use -operation for one-shot mode or -server for the HTTP API",
			zap.String("op", "main"),
		)
	}

	runOperation(logger, *operation, *paramsJSON, outputFormat)
}

// runOperation executes a single financial operation and renders the result.
func runOperation(logger *zap.Logger, operation, paramsJSON, outputFormat string) {
	params, err := tool.DecodeParams([]byte(paramsJSON))
	if err != nil {
		logger.Fatal("failed to decode operation params",
			zap.String("op", "main"),
			zap.String("operation", operation),
			zap.Error(err),
		)
	}

	result, err := tool.Execute(logger, operation, params)
	if err != nil {
		// Parameter errors surface on stdout as tool-protocol data so
		// calling agents can read them; the process still exits non-zero.
		payload := map[string]any{"error": err.Error(), "operation": operation}
		if encoded, encodeErr := output.JSONString(payload); encodeErr == nil {
			fmt.Println(encoded)
		}
		logger.Fatal("operation failed",
			zap.String("op", "main"),
			zap.String("operation", operation),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(operation, result)
	case constants.OutputFormatCSV:
		output.CsvFormat(operation, result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(result); err != nil {
			logger.Fatal("failed to encode result",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

// runServer serves the tool API over HTTP until interrupted.
func runServer(logger *zap.Logger, conf *config.Configuration, serverConf *server.Config) {
	tracker := errtrack.NewTracker(conf.Monitor.MaxTracked)

	window := time.Duration(conf.Monitor.WindowHours * float64(time.Hour))
	monitor := health.NewMonitor(tracker, version, window)

	handler := server.NewHandler(logger, serverConf.BodySizeBytes(), version, tracker, monitor)

	// Periodic health summaries are opt-in.
	if conf.Monitor.Enabled {
		sched := scheduler.NewScheduler(logger, monitor)
		schedule := conf.Monitor.Schedule
		if schedule == "" {
			schedule = constants.DefaultSummarySchedule
		}
		if err := sched.RegisterSummaryJob(schedule); err != nil {
			logger.Fatal("failed to register health summary job",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         serverConf.Address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "main"),
			zap.String("address", serverConf.Address),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	case sig := <-quit:
		logger.Info("shutting down",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
