package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/checkin-tracker/internal/attendance"
	"github.com/username/checkin-tracker/internal/calendar"
	"github.com/username/checkin-tracker/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "checkin",
		Short: "Monthly attendance tracker",
		Long:  "Track daily attendance status per month and produce a filled timesheet report (xlsx + email)",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(toggleCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(sendCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initStore wires the holiday calendar, classifier and persistence into
// the attendance store
func initStore(cfg *config.Config) (*attendance.Store, error) {
	primary := calendar.NewHolidayAPICalendar(
		cfg.Calendar.APIURL,
		cfg.Calendar.Region,
		cfg.Calendar.GetCacheTTL(),
		logger,
	)

	var cal calendar.Calendar = primary
	if cfg.Calendar.FallbackFile != "" {
		fallback := calendar.NewFileCalendar(cfg.Calendar.FallbackFile, logger)
		composite := calendar.NewCompositeCalendar(primary, fallback, logger)

		if err := composite.LoadFallback(); err != nil {
			logger.Warn("Failed to load fallback calendar, continuing with API only",
				zap.Error(err))
		}

		cal = composite
	}

	classifier := calendar.NewClassifier(cal)
	persistence := attendance.NewFileStore(cfg.State.DataDir, logger)

	return attendance.NewStore(persistence, classifier, logger), nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
