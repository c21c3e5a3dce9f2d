package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultStatePath  = "~/.timeline.d"
	defaultTrackWidth = 1000
)

// Config exposes the settings the CLI and servers need.
type Config interface {
	// SeedPath is the seed file to load items from; empty means the built-in seed.
	SeedPath() string
	// StatePath is the directory holding persisted view state.
	StatePath() string
	// TrackWidth is the default rendered track width in pixels.
	TrackWidth() float64
	Debug() bool
	// File is the config file that was read, if any.
	File() string
}

// LoadConfig reads .timeline.yaml from $TIMELINE_CONFIG_PATH or the working
// directory. Every key can be overridden with a TIMELINE_ prefixed env var.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("items", "")
	v.SetDefault("state", defaultStatePath)
	v.SetDefault("width", defaultTrackWidth)
	v.SetDefault("debug", false)
	v.SetConfigName(".timeline") // .yaml is implicit
	v.SetEnvPrefix("TIMELINE")
	v.AutomaticEnv()

	if override := os.Getenv("TIMELINE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	statePath, err := homedir.Expand(v.GetString("state"))
	if err != nil {
		return nil, fmt.Errorf("store: expand state path: %w", err)
	}
	seedPath, err := homedir.Expand(v.GetString("items"))
	if err != nil {
		return nil, fmt.Errorf("store: expand items path: %w", err)
	}

	width := v.GetFloat64("width")
	if width <= 0 {
		width = defaultTrackWidth
	}

	return &fileConfig{
		Items:  seedPath,
		State:  statePath,
		Width:  width,
		Debugs: v.GetBool("debug"),
		Source: v.ConfigFileUsed(),
	}, nil
}

// StaticConfig builds a Config from explicit values.
func StaticConfig(seedPath, statePath string, width float64) Config {
	if width <= 0 {
		width = defaultTrackWidth
	}
	return &fileConfig{Items: seedPath, State: statePath, Width: width}
}

type fileConfig struct {
	Items  string  `json:"items"`
	State  string  `json:"state"`
	Width  float64 `json:"width"`
	Debugs bool    `json:"debug"`
	Source string  `json:"-"`
}

func (f *fileConfig) SeedPath() string {
	return f.Items
}

func (f *fileConfig) StatePath() string {
	return f.State
}

func (f *fileConfig) TrackWidth() float64 {
	return f.Width
}

func (f *fileConfig) Debug() bool {
	return f.Debugs
}

func (f *fileConfig) File() string {
	return f.Source
}
