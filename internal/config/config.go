// Package config provides application configuration loading.
//
// Values are resolved in this order, later sources winning: built-in
// defaults, a TOML file, then WEZCONF_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "WEZCONF_"

	// FileExtTOML is the extension of configuration and profile files.
	FileExtTOML = ".toml"

	// FileModeDir is the permission for created directories.
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for written files.
	FileModeFile os.FileMode = 0644

	appName = "wezconf"
)

var (
	config   map[string]string
	defaults map[string]string
	mu       sync.RWMutex
)

// Load initializes configuration. It is safe to call more than once;
// every call starts over from the defaults.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	defaults = make(map[string]string)

	setDefaults()
	loadFromEnv()
	loadFromFile()
	loadFromEnv()
	validate()
	computePaths()
}

func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, appName))
	setDefault("state_dir", filepath.Join(xdgStateHome, appName))
	setDefault("output_path", "-")
	setDefault("preview_format", "html")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
	setDefault("quiet", "false")
	setDefault("hooks_failure_mode", "warn")
	setDefault("hooks_timeout", "30")
}

func setDefault(key, value string) {
	config[key] = value
	defaults[key] = value
}

// loadFromFile merges the TOML file named by WEZCONF_CONFIG_PATH, or
// {config_dir}/config.toml when it exists.
func loadFromFile() {
	configPath := os.Getenv(EnvPrefix + "CONFIG_PATH")
	if configPath == "" {
		candidate := filepath.Join(config["config_dir"], "config"+FileExtTOML)
		if _, err := os.Stat(candidate); err != nil {
			return
		}
		configPath = candidate
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a decoded TOML scalar to its string form.
func coerceConfigValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], EnvPrefix))
		if key == "config_path" {
			continue
		}
		config[key] = parts[1]
	}
}

func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := defaults[key]
		normalized, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
			continue
		}
		config[key] = normalized
	}
}

// computePaths fills path keys that derive from config_dir.
func computePaths() {
	if config["profile_path"] == "" && config["config_dir"] != "" {
		config["profile_path"] = filepath.Join(config["config_dir"], "profile"+FileExtTOML)
	}
	if config["hooks_dir"] == "" && config["config_dir"] != "" {
		config["hooks_dir"] = filepath.Join(config["config_dir"], "hooks")
	}
}

// Get returns a configuration value or defaultValue when unset.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as an integer, or defaultValue.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	n, err := strconv.Atoi(config[key])
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as a boolean, or defaultValue.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	switch normalizeBool(config[key]) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// Set overrides a single value for the rest of the process, e.g. from a
// command-line flag.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if config == nil {
		config = make(map[string]string)
	}
	config[key] = value
}
