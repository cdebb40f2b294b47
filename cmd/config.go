package cmd

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/xiam/to"
	"gopkg.in/yaml.v2"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/api"
)

const envPrefix = "CAPMON"

// Settings is process configuration read from CAPMON_* environment variables
type Settings struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Max count of concurrently handled forecast requests
	Workers int `yaml:"workers"`
	// Max count of forecast requests waiting for a free worker
	Backlog int `yaml:"backlog"`
	// Enables debug logging and pretty log format
	Debug bool `yaml:"debug"`
	// Path to datasources file
	ConfigPath string `yaml:"config_path"`
	// Timeout of one datasource request, format: 60s, 1m
	Timeout    string       `yaml:"timeout"`
	EnableCORS bool         `yaml:"enable_cors"`
	Logger     LoggerConfig `yaml:"log"`
}

// LoggerConfig is logger settings structure that initialises at the start of capmon
type LoggerConfig struct {
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
	LogPrettyFormat bool   `yaml:"log_pretty_format"`
}

// DefaultSettings returns settings used when environment has no overrides
func DefaultSettings() Settings {
	configPath := "config.yml"
	if workDir, err := os.Getwd(); err == nil {
		configPath = filepath.Join(workDir, configPath)
	}
	return Settings{
		Host:       "0.0.0.0",
		Port:       8050, //nolint
		Workers:    2,    //nolint
		Backlog:    64,   //nolint
		ConfigPath: configPath,
		Timeout:    "60s",
		Logger: LoggerConfig{
			LogFile:  "stdout",
			LogLevel: "info",
		},
	}
}

// LoadSettings reads settings from environment, unparsable value is a config error
func LoadSettings() (Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("host", defaults.Host)
	v.SetDefault("port", strconv.Itoa(defaults.Port))
	v.SetDefault("workers", strconv.Itoa(defaults.Workers))
	v.SetDefault("backlog", strconv.Itoa(defaults.Backlog))
	v.SetDefault("debug", "no")
	v.SetDefault("config_path", defaults.ConfigPath)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("log_file", defaults.Logger.LogFile)
	v.SetDefault("log_level", defaults.Logger.LogLevel)
	v.SetDefault("enable_cors", "no")

	settings := Settings{
		Host:       v.GetString("host"),
		ConfigPath: v.GetString("config_path"),
		Timeout:    v.GetString("timeout"),
		Logger: LoggerConfig{
			LogFile:  v.GetString("log_file"),
			LogLevel: v.GetString("log_level"),
		},
	}

	var err error
	if settings.Port, err = parsePositive("port", v.GetString("port")); err != nil {
		return settings, err
	}
	if settings.Port > 65535 { //nolint
		return settings, settingError("port", fmt.Errorf("%d is out of range 1..65535", settings.Port))
	}
	if settings.Workers, err = parsePositive("workers", v.GetString("workers")); err != nil {
		return settings, err
	}
	if settings.Backlog, err = parsePositive("backlog", v.GetString("backlog")); err != nil {
		return settings, err
	}
	if settings.Debug, err = strToBool(v.GetString("debug")); err != nil {
		return settings, settingError("debug", err)
	}
	if settings.EnableCORS, err = strToBool(v.GetString("enable_cors")); err != nil {
		return settings, settingError("enable_cors", err)
	}
	if settings.GetTimeout() <= 0 {
		return settings, settingError("timeout", fmt.Errorf("invalid duration %q", settings.Timeout))
	}

	if settings.Debug {
		settings.Logger.LogLevel = "debug"
		settings.Logger.LogPrettyFormat = true
	}
	return settings, nil
}

// GetTimeout returns datasource request timeout
func (settings Settings) GetTimeout() time.Duration {
	return to.Duration(settings.Timeout)
}

// GetAPISettings returns api configuration
func (settings Settings) GetAPISettings() *api.Config {
	return &api.Config{
		EnableCORS: settings.EnableCORS,
		Listen:     net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port)),
		Workers:    settings.Workers,
		Backlog:    settings.Backlog,
		Timeout:    settings.GetTimeout(),
	}
}

// strToBool accepts y/yes/t/true/on/1 and n/no/f/false/off/0 in any case
func strToBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid truth value %q", value)
	}
}

func parsePositive(name, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, settingError(name, fmt.Errorf("%q is not a number", value))
	}
	if parsed <= 0 {
		return 0, settingError(name, fmt.Errorf("must be positive, got %d", parsed))
	}
	return parsed, nil
}

func settingError(name string, err error) error {
	return capmon.NewConfigError(envPrefix+"_"+strings.ToUpper(name), err)
}

// ReadConfig parses yaml file into given structure
func ReadConfig(configFileName string, config interface{}) error {
	configYaml, err := os.ReadFile(configFileName)
	if err != nil {
		return fmt.Errorf("can't read file [%s] [%s]", configFileName, err.Error())
	}
	err = yaml.Unmarshal(configYaml, config)
	if err != nil {
		return fmt.Errorf("can't parse config file [%s] [%s]", configFileName, err.Error())
	}
	return nil
}

// PrintConfig prints config to stdout
func PrintConfig(config interface{}) {
	d, _ := yaml.Marshal(&config)
	fmt.Println(string(d))
}
