package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete runtime configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Parser      ParserConfig      `yaml:"parser" mapstructure:"parser"`
	GeoData     GeoDataConfig     `yaml:"geodata" mapstructure:"geodata"`
	Render      RenderConfig      `yaml:"render" mapstructure:"render"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls outbound requests to the geometry sources.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// CacheConfig controls the layered boundary cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ParserConfig bounds the accepted year range.
type ParserConfig struct {
	MinYear     int  `yaml:"min_year" mapstructure:"min_year"`
	MaxYear     int  `yaml:"max_year" mapstructure:"max_year"`
	AllowFuture bool `yaml:"allow_future" mapstructure:"allow_future"`
}

// GeoDataConfig selects and addresses the upstream geometry sources.
type GeoDataConfig struct {
	UseRealData       bool    `yaml:"use_real_data" mapstructure:"use_real_data"`
	CurrentAPIBase    string  `yaml:"current_api_base" mapstructure:"current_api_base"`
	ArchiveBase       string  `yaml:"archive_base" mapstructure:"archive_base"`
	CutoffYear        int     `yaml:"cutoff_year" mapstructure:"cutoff_year"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
	RespectRobots     bool    `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// RenderConfig carries the defaults handed to the renderer.
type RenderConfig struct {
	Width           int    `yaml:"width" mapstructure:"width"`
	Height          int    `yaml:"height" mapstructure:"height"`
	Style           string `yaml:"style" mapstructure:"style"`
	ShowLabels      bool   `yaml:"show_labels" mapstructure:"show_labels"`
	ShowUncertainty bool   `yaml:"show_uncertainty" mapstructure:"show_uncertainty"`
}

// ConcurrencyConfig controls batch generation.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults. The year bounds follow
// the parser's documented limits: below 1500 border data is unreliable,
// above 2100 is speculative.
func DefaultConfig() *Config {
	cacheDir := ".chronomap-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".chronomap", "cache", "geodata")
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "chronomap/0.1 (+https://github.com/ppiankov/chronomap)",
			MaxBodyBytes: 50_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   30 * 24 * time.Hour,
		},
		Parser: ParserConfig{
			MinYear:     1500,
			MaxYear:     2100,
			AllowFuture: false,
		},
		GeoData: GeoDataConfig{
			UseRealData:       true,
			CurrentAPIBase:    "http://api.thenmap.net/v2",
			ArchiveBase:       "https://raw.githubusercontent.com/aourednik/historical-basemaps/master/geojson",
			CutoffYear:        1945,
			RequestsPerSecond: 2,
			Burst:             4,
			RespectRobots:     true,
		},
		Render: RenderConfig{
			Width:           1200,
			Height:          800,
			Style:           "antique",
			ShowLabels:      true,
			ShowUncertainty: true,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
