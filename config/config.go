package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"tailtheme/model"
)

// FileName is the config file looked up in the data directory.
const FileName = "tailtheme.config"

const envPrefix = "TAILTHEME"

const (
	KeyDataDir    = "data_dir"
	KeyListenAddr = "listen_addr"
	KeySeed       = "seed"
	KeyContrast   = "contrast"
	KeyOutput     = "output"
	KeyPresets    = "presets"
)

type Config struct {
	DataDir    string         `json:"data_dir" mapstructure:"data_dir"`
	ListenAddr string         `json:"listen_addr" mapstructure:"listen_addr"`
	Seed       string         `json:"seed" mapstructure:"seed"`
	Contrast   float64        `json:"contrast" mapstructure:"contrast"`
	Output     string         `json:"output,omitempty" mapstructure:"output"`
	Presets    []model.Preset `json:"presets,omitempty" mapstructure:"presets"`
}

func Default() Config {
	return Config{
		DataDir:    ".",
		ListenAddr: ":8080",
		Seed:       "#1976D2",
		Contrast:   0,
		Presets: []model.Preset{
			{Name: "default", Display: "Default", Seed: "#1976D2", Contrast: 0},
			{Name: "high-contrast", Display: "High Contrast", Seed: "#1976D2", Contrast: 1},
			{Name: "forest", Seed: "#2E7D32", Contrast: 0},
			{Name: "ember", Seed: "#D84315", Contrast: 0},
		},
	}
}

// Load reads <dataDir>/tailtheme.config over the defaults. A missing file is
// not an error. TAILTHEME_* environment variables override file values.
func Load(dataDir string) (Config, error) {
	cfgPath := filepath.Join(dataDir, FileName)
	def := Default()

	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDataDir, def.DataDir)
	v.SetDefault(KeyListenAddr, def.ListenAddr)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyContrast, def.Contrast)
	v.SetDefault(KeyOutput, def.Output)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", cfgPath, err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = def.ListenAddr
	}
	if cfg.Seed == "" {
		cfg.Seed = def.Seed
	}
	if !v.IsSet(KeyPresets) {
		cfg.Presets = def.Presets
	}

	return cfg, nil
}

func Save(cfg Config) error {
	cfgPath := filepath.Join(cfg.DataDir, FileName)

	// Create directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	tmp := cfgPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, cfgPath)
}
