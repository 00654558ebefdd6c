package consolidate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Settings contains the configurable thresholds and list limits of the
// report builder. The window set itself (7/15/30 days) is part of the report
// contract and is not configurable.
type Settings struct {
	// TopN is the length of every ranking list (default: 5)
	TopN int `mapstructure:"top_n" validate:"gt=0"`
	// DeliveredWindowDays is the trailing window for the delivered-this-week block (default: 7)
	DeliveredWindowDays int `mapstructure:"delivered_window_days" validate:"gt=0"`
	// UpcomingDays is the forward agenda window (default: 7)
	UpcomingDays int `mapstructure:"upcoming_days" validate:"gt=0"`
	// UrgentDays is the forward window an offer's due date must fall in to count as urgent (default: 2)
	UrgentDays int `mapstructure:"urgent_days" validate:"gt=0"`
	// UrgentKeysLimit caps the urgent key list (default: 5)
	UrgentKeysLimit int `mapstructure:"urgent_keys_limit" validate:"gt=0"`
	// UpcomingOffersLimit caps the upcoming offer list (default: 20)
	UpcomingOffersLimit int `mapstructure:"upcoming_offers_limit" validate:"gt=0"`
	// AtRiskUtilizationPct is the budget utilization threshold, in percent, above which an offer is at risk (default: 80)
	AtRiskUtilizationPct float64 `mapstructure:"at_risk_utilization_pct" validate:"gt=0"`
	// AtRiskLimit caps the at-risk offer list (default: 10)
	AtRiskLimit int `mapstructure:"at_risk_limit" validate:"gt=0"`
	// PendingOwnersLimit caps the pending-owner list (default: 20)
	PendingOwnersLimit int `mapstructure:"pending_owners_limit" validate:"gt=0"`
}

// DefaultSettings returns the thresholds the weekly report runs with.
func DefaultSettings() Settings {
	return Settings{
		TopN:                 5,
		DeliveredWindowDays:  7,
		UpcomingDays:         7,
		UrgentDays:           2,
		UrgentKeysLimit:      5,
		UpcomingOffersLimit:  20,
		AtRiskUtilizationPct: 80,
		AtRiskLimit:          10,
		PendingOwnersLimit:   20,
	}
}

// LoadSettings reads a settings file, overlaying defaults. Unset keys keep
// their default; the merged result is validated before use.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := validator.New().Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}
