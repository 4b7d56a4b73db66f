package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"tabuddy/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	// DataFile is where the address book is persisted.
	DataFile string `mapstructure:"data_file"`
	// Backend selects the storage backend: "json" or "sqlite".
	Backend    string            `mapstructure:"backend"`
	StylesFile string            `mapstructure:"styles_file"`
	KeyMap     map[string]string `mapstructure:"keymap"`
	// CleanHorizonDays is the grace period for the clean sweep:
	// assignments due more than this many days before today are removed.
	CleanHorizonDays int `mapstructure:"clean_horizon_days"`
}

// Styles holds the application colors and styling information
type Styles struct {
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	ModuleColor string `json:"module_color"`
	TagColor    string `json:"tag_color"`
	DoneColor   string `json:"done_color"`
}

// Load loads the application configuration from the specified path,
// creating a default config file on first run.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "tabuddy")

	config := Config{
		DataFile:         filepath.Join(configDir, "addressbook.json"),
		Backend:          "json",
		StylesFile:       filepath.Join(configDir, "styles.json"),
		KeyMap:           keymaps.GetDefaultKeyMappings(),
		CleanHorizonDays: 0,
	}

	// Setup viper
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(configDir)
	}

	viper.SetDefault("data_file", config.DataFile)
	viper.SetDefault("backend", config.Backend)
	viper.SetDefault("styles_file", config.StylesFile)
	viper.SetDefault("keymap", config.KeyMap)
	viper.SetDefault("clean_horizon_days", config.CleanHorizonDays)

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return config, Styles{}, err
		}
		// Config file not found, create default config
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, Styles{}, err
		}
		if err := viper.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
			return config, Styles{}, err
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		return config, Styles{}, err
	}

	// Now load the styles file
	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		ModuleColor:       "2",
		TagColor:          "4",
		DoneColor:         "242",
	}

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		// If the file doesn't exist, create it with default values
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	// File exists, parse it
	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
