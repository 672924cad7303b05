// backend-go/internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/domain"
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Defaults DefaultsConfig
	Presets  []domain.Preset
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type AppConfig struct {
	OutputDir   string
	PresetsFile string
}

// DefaultsConfig holds the analysis parameters used when a request leaves
// them unset. They mirror the sliders of the original toolkit UI.
type DefaultsConfig struct {
	ABCAPct          float64
	ABCBPct          float64
	MarginThreshold  float64
	KraljicThreshold float64
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("APP_OUTPUT_DIR", "./data/output")
		viper.SetDefault("APP_PRESETS_FILE", "")
		viper.SetDefault("ABC_A_PCT", 70.0)
		viper.SetDefault("ABC_B_PCT", 20.0)
		viper.SetDefault("MARGIN_THRESHOLD_PCT", 20.0)
		viper.SetDefault("KRALJIC_THRESHOLD", 5.0)

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure output directory exists
		ensureDir(viper.GetString("APP_OUTPUT_DIR"))

		presets, err := loadPresets(viper.GetString("APP_PRESETS_FILE"))
		if err != nil {
			log.Fatalf("Failed to load presets: %v", err)
		}

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			App: AppConfig{
				OutputDir:   viper.GetString("APP_OUTPUT_DIR"),
				PresetsFile: viper.GetString("APP_PRESETS_FILE"),
			},
			Defaults: DefaultsConfig{
				ABCAPct:          viper.GetFloat64("ABC_A_PCT"),
				ABCBPct:          viper.GetFloat64("ABC_B_PCT"),
				MarginThreshold:  viper.GetFloat64("MARGIN_THRESHOLD_PCT"),
				KraljicThreshold: viper.GetFloat64("KRALJIC_THRESHOLD"),
			},
			Presets: presets,
		}
	})

	return instance
}

// loadPresets reads the presets YAML when a path is configured and falls
// back to the built-in sample cases otherwise.
func loadPresets(path string) ([]domain.Preset, error) {
	if path == "" {
		return BuiltinPresets(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read presets file %s: %w", path, err)
	}

	var presets []domain.Preset
	if err := v.UnmarshalKey("presets", &presets); err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}
	return presets, nil
}

// BuiltinPresets returns the sample cases shipped with the toolkit.
func BuiltinPresets() []domain.Preset {
	return []domain.Preset{
		{
			Name:             "Coffee Co",
			AnnualDemand:     6000,
			UnitCost:         1500,
			OrderingCost:     4000,
			HoldingRate:      0.10,
			LeadTimeMonths:   2,
			DiscountQuantity: 500,
			DiscountRate:     0.10,
		},
		{
			Name:             "CocoaDelight",
			AnnualDemand:     12000,
			UnitCost:         2000,
			OrderingCost:     5000,
			HoldingRate:      0.12,
			LeadTimeMonths:   3,
			DiscountQuantity: 1200,
			DiscountRate:     0.05,
		},
	}
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
