package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Employee EmployeeConfig `mapstructure:"employee"`
	Report   ReportConfig   `mapstructure:"report"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	State    StateConfig    `mapstructure:"state"`
	Log      LogConfig      `mapstructure:"log"`
}

// EmployeeConfig represents the defaults for the report header fields.
// Each field can be overridden per invocation with CLI flags.
type EmployeeConfig struct {
	Name     string `mapstructure:"name"`
	Position string `mapstructure:"position"`
	Email    string `mapstructure:"email"` // report recipient
}

// ReportConfig represents report generation configuration
type ReportConfig struct {
	TemplateURL string `mapstructure:"template_url"`
	OutputDir   string `mapstructure:"output_dir"`
}

// DeliveryConfig represents the mail relay configuration
type DeliveryConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// CalendarConfig represents holiday calendar configuration
type CalendarConfig struct {
	Region       string `mapstructure:"region"`
	APIURL       string `mapstructure:"api_url"` // URL template with {year} / {region}
	FallbackFile string `mapstructure:"fallback_file"`
	CacheTTL     string `mapstructure:"cache_ttl"`
}

// StateConfig represents attendance state storage configuration
type StateConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.checkin-tracker")
	}

	v.SetDefault("report.template_url", "https://zhubazhai.github.io/checking-in/attendanceTemplate.xlsx")
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("calendar.region", "CN")
	v.SetDefault("calendar.api_url", "https://timor.tech/api/holiday/year/{year}")
	v.SetDefault("state.data_dir", "data")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Report.TemplateURL == "" {
		return fmt.Errorf("report.template_url is required")
	}
	if c.Calendar.Region == "" {
		return fmt.Errorf("calendar.region is required")
	}
	if c.Calendar.APIURL == "" {
		return fmt.Errorf("calendar.api_url is required")
	}
	if c.State.DataDir == "" {
		return fmt.Errorf("state.data_dir is required")
	}
	return nil
}

// GetCacheTTL returns the holiday cache TTL duration
func (c *CalendarConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
