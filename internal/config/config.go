package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Apollo    ApolloConfig    `yaml:"apollo" mapstructure:"apollo"`
	Hunter    HunterConfig    `yaml:"hunter" mapstructure:"hunter"`
	OpenAI    OpenAIConfig    `yaml:"openai" mapstructure:"openai"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Outreach  OutreachConfig  `yaml:"outreach" mapstructure:"outreach"`
	Scrape    ScrapeConfig    `yaml:"scrape" mapstructure:"scrape"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Report    ReportConfig    `yaml:"report" mapstructure:"report"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ApolloConfig holds Apollo API settings (company search, enrichment, people).
type ApolloConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// HunterConfig holds Hunter API settings (domain emails, company lookup).
type HunterConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// OpenAIConfig holds settings for the OpenAI-compatible chat completions API.
type OpenAIConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// OutreachConfig configures outreach message generation.
type OutreachConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"`
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	ProfilePath string  `yaml:"profile_path" mapstructure:"profile_path"`
}

// ScrapeConfig configures website insight scraping.
type ScrapeConfig struct {
	TimeoutSecs  int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	UserAgent    string `yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds the default search criteria.
type SearchConfig struct {
	CompanySize string `yaml:"company_size" mapstructure:"company_size"`
	Industry    string `yaml:"industry" mapstructure:"industry"`
	Location    string `yaml:"location" mapstructure:"location"`
}

// ReportConfig configures the output report.
type ReportConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// envAliases maps config keys to the unprefixed environment variable names
// used by existing deployments.
var envAliases = map[string]string{
	"apollo.key":          "APOLLO_API_KEY",
	"hunter.key":          "HUNTER_API_KEY",
	"openai.key":          "OPENAI_API_KEY",
	"anthropic.key":       "ANTHROPIC_API_KEY",
	"search.company_size": "DEFAULT_COMPANY_SIZE",
	"search.industry":     "DEFAULT_INDUSTRY",
	"search.location":     "DEFAULT_LOCATION",
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		// Prefixed name wins over the alias when both are set.
		if err := v.BindEnv(key, "LEADGEN_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, eris.Wrapf(err, "config: bind env %s", env)
		}
	}

	// Defaults
	v.SetDefault("apollo.base_url", "https://api.apollo.io")
	v.SetDefault("apollo.timeout_secs", 30)
	v.SetDefault("hunter.base_url", "https://api.hunter.io")
	v.SetDefault("hunter.timeout_secs", 10)
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("outreach.provider", "openai")
	v.SetDefault("outreach.max_tokens", 180)
	v.SetDefault("outreach.temperature", 0.7)
	v.SetDefault("scrape.timeout_secs", 8)
	v.SetDefault("scrape.max_body_bytes", 2*1024*1024)
	v.SetDefault("scrape.user_agent", "Mozilla/5.0 (compatible; LeadgenBot/1.0)")
	v.SetDefault("search.company_size", "50-200")
	v.SetDefault("search.industry", "software")
	v.SetDefault("search.location", "")
	v.SetDefault("report.path", "leads_output.csv")
	v.SetDefault("report.format", "csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks settings that would make the run impossible. It lowercases
// the provider and report format in place. API keys are not checked here; see
// MissingKeys.
func (c *Config) Validate() error {
	var errs []string

	c.Outreach.Provider = strings.ToLower(strings.TrimSpace(c.Outreach.Provider))
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))

	switch c.Outreach.Provider {
	case "openai", "anthropic":
	default:
		errs = append(errs, "outreach.provider must be one of: openai, anthropic")
	}
	switch c.Report.Format {
	case "csv", "xlsx":
	default:
		errs = append(errs, "report.format must be one of: csv, xlsx")
	}
	if c.Report.Path == "" {
		errs = append(errs, "report.path is required")
	}
	if c.Outreach.MaxTokens <= 0 {
		errs = append(errs, "outreach.max_tokens must be positive")
	}
	if c.Apollo.TimeoutSecs <= 0 {
		errs = append(errs, "apollo.timeout_secs must be positive")
	}
	if c.Hunter.TimeoutSecs <= 0 {
		errs = append(errs, "hunter.timeout_secs must be positive")
	}
	if c.Scrape.TimeoutSecs <= 0 {
		errs = append(errs, "scrape.timeout_secs must be positive")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// MissingKeys returns the names of provider API keys that are not set.
// Missing keys are not fatal: the affected calls degrade to empty results.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.Apollo.Key == "" {
		missing = append(missing, "apollo.key")
	}
	if c.Hunter.Key == "" {
		missing = append(missing, "hunter.key")
	}
	switch c.Outreach.Provider {
	case "anthropic":
		if c.Anthropic.Key == "" {
			missing = append(missing, "anthropic.key")
		}
	default:
		if c.OpenAI.Key == "" {
			missing = append(missing, "openai.key")
		}
	}
	return missing
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
