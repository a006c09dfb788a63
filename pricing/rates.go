package pricing

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed rates.default.json
var defaultRates []byte

// RatesConfig represents the business coefficients used to price a display
type RatesConfig struct {
	Currency         string                        `json:"currency"`
	Defaults         Defaults                      `json:"defaults"`
	BasePricePerSqFt map[string]map[string]float64 `json:"basePricePerSqFt"` // category -> environment -> $/sq ft
	PitchAdjustments []PitchAdjustment             `json:"pitchAdjustments"`
	Hardware         HardwareRates                 `json:"hardware"`
	Structural       StructuralRates               `json:"structural"`
	Labor            LaborRates                    `json:"labor"`
	Shipping         ShippingRates                 `json:"shipping"`
	PMEngineering    PMEngineeringRates            `json:"pmEngineering"`
	BondRate         float64                       `json:"bondRate"`
}

// Defaults fill optional quote request fields
type Defaults struct {
	PixelPitchMM    float64 `json:"pixelPitchMm"`
	Environment     string  `json:"environment"`
	ProductCategory string  `json:"productCategory"`
	Margin          float64 `json:"margin"`
	ServiceAccess   string  `json:"serviceAccess"`
	SteelType       string  `json:"steelType"`
	MountingType    string  `json:"mountingType"`
}

// PitchAdjustment scales the base price for pitches up to MaxPitchMM
type PitchAdjustment struct {
	MaxPitchMM float64 `json:"maxPitchMm"`
	Multiplier float64 `json:"multiplier"`
}

type HardwareRates struct {
	CurvedPremiumPct float64 `json:"curvedPremiumPct"`
	SparePartsPct    float64 `json:"sparePartsPct"`
}

type StructuralRates struct {
	MountingPct      map[string]float64 `json:"mountingPct"`
	SteelRatePerSqFt map[string]float64 `json:"steelRatePerSqFt"`
}

type LaborRates struct {
	InstallHoursPerSqFt     float64 `json:"installHoursPerSqFt"`
	HourlyRate              float64 `json:"hourlyRate"`
	ElectricalPct           float64 `json:"electricalPct"`
	StructuralLaborPct      float64 `json:"structuralLaborPct"`
	RearServiceSurchargePct float64 `json:"rearServiceSurchargePct"`
}

type ShippingRates struct {
	RatePerSqFt float64 `json:"ratePerSqFt"`
	CratingFee  float64 `json:"cratingFee"`
}

type PMEngineeringRates struct {
	PMPct          float64 `json:"pmPct"`
	EngineeringFee float64 `json:"engineeringFee"`
	PermitFee      float64 `json:"permitFee"`
}

// LoadRates reads a rates config from configPath, or the built-in defaults when configPath is empty
func LoadRates(configPath string) (*RatesConfig, string, error) {
	data := defaultRates
	source := "built-in defaults"

	if configPath != "" {
		// Resolve config path
		if !filepath.IsAbs(configPath) {
			wd, err := os.Getwd()
			if err != nil {
				return nil, "", fmt.Errorf("failed to get working directory: %w", err)
			}
			configPath = filepath.Join(wd, configPath)
		}

		fileData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read rates config: %w", err)
		}
		data = fileData
		source = configPath
	}

	config, err := ParseRates(data)
	if err != nil {
		return nil, "", err
	}
	return config, source, nil
}

// ParseRates decodes and validates a rates config
func ParseRates(data []byte) (*RatesConfig, error) {
	var config RatesConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse rates config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid rates config: %w", err)
	}
	return &config, nil
}

func validateConfig(config *RatesConfig) error {
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if len(config.BasePricePerSqFt) == 0 {
		return fmt.Errorf("basePricePerSqFt is required")
	}
	envs, ok := config.BasePricePerSqFt[config.Defaults.ProductCategory]
	if !ok {
		return fmt.Errorf("default product category %q has no base price", config.Defaults.ProductCategory)
	}
	if _, ok := envs[config.Defaults.Environment]; !ok {
		return fmt.Errorf("default environment %q has no base price for %q", config.Defaults.Environment, config.Defaults.ProductCategory)
	}
	if _, ok := config.Structural.MountingPct[config.Defaults.MountingType]; !ok {
		return fmt.Errorf("default mounting type %q has no structural percentage", config.Defaults.MountingType)
	}
	if _, ok := config.Structural.SteelRatePerSqFt[config.Defaults.SteelType]; !ok {
		return fmt.Errorf("default steel type %q has no steel rate", config.Defaults.SteelType)
	}
	if config.Defaults.Margin < 0 || config.Defaults.Margin >= 1 {
		return fmt.Errorf("default margin must be in [0, 1), got %v", config.Defaults.Margin)
	}
	if config.BondRate <= 0 || config.BondRate >= 1 {
		return fmt.Errorf("bondRate must be in (0, 1), got %v", config.BondRate)
	}
	for i, adj := range config.PitchAdjustments {
		if adj.Multiplier <= 0 {
			return fmt.Errorf("pitchAdjustments[%d]: multiplier must be positive", i)
		}
		if i > 0 && adj.MaxPitchMM <= config.PitchAdjustments[i-1].MaxPitchMM {
			return fmt.Errorf("pitchAdjustments must be sorted by maxPitchMm")
		}
	}
	return nil
}
