package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MAILSETTINGS"

type Config struct {
	DBPath     string `mapstructure:"db_path"`
	ServerURL  string `mapstructure:"server_url"`
	ListenAddr string `mapstructure:"listen_addr"`
	Local      bool   `mapstructure:"local"`

	// ThemeName is the color theme used until settings are loaded
	ThemeName    string `mapstructure:"theme_name"`
	DarkPalette  string `mapstructure:"dark_palette"`
	LightPalette string `mapstructure:"light_palette"`
	Locale       string `mapstructure:"locale"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ToastDuration  time.Duration `mapstructure:"toast_duration"`
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".mailsettings")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

// SetConfigFile points the package at another config file, e.g. from --config.
func SetConfigFile(path string) {
	configFile = path
	configDir = filepath.Dir(path)
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		DBPath:         filepath.Join(configDir, "settings.db"),
		ServerURL:      "http://127.0.0.1:8484",
		ListenAddr:     "127.0.0.1:8484",
		ThemeName:      "",
		DarkPalette:    "dark",
		LightPalette:   "light",
		Locale:         "en",
		LogLevel:       "info",
		LogFile:        filepath.Join(configDir, "mailsettings.log"),
		RequestTimeout: 10 * time.Second,
		ToastDuration:  4 * time.Second,
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	d := GetDefaultConfig()
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("server_url", d.ServerURL)
	v.SetDefault("listen_addr", d.ListenAddr)
	v.SetDefault("local", d.Local)
	v.SetDefault("theme_name", d.ThemeName)
	v.SetDefault("dark_palette", d.DarkPalette)
	v.SetDefault("light_palette", d.LightPalette)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("toast_duration", d.ToastDuration)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	return v
}

// loadDotEnv reads a .env file from the working directory when present.
// Variables already set in the environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// loads config from file, then the environment
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := newViper()
	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(configDir, "settings.db")
	}

	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("db_path", cfg.DBPath)
	v.Set("server_url", cfg.ServerURL)
	v.Set("listen_addr", cfg.ListenAddr)
	v.Set("local", cfg.Local)
	v.Set("theme_name", cfg.ThemeName)
	v.Set("dark_palette", cfg.DarkPalette)
	v.Set("light_palette", cfg.LightPalette)
	v.Set("locale", cfg.Locale)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_file", cfg.LogFile)
	v.Set("request_timeout", cfg.RequestTimeout.String())
	v.Set("toast_duration", cfg.ToastDuration.String())

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// updates the default color theme in the config file
func UpdateTheme(themeName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ThemeName = themeName
	return SaveConfig(cfg)
}
