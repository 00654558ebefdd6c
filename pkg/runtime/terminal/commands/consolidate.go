package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/render"
	"github.com/de-tools/offer-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/offer-atlas/pkg/services/consolidate"
	"github.com/spf13/cobra"
)

// NewConsolidateCmd builds a consolidated report from JSON record files.
// The offers file is required; the updates file is optional.
func NewConsolidateCmd(controller *consolidate.Controller, reporter *export.Reporter) *cobra.Command {
	var (
		offersPath  string
		updatesPath string
		asJSON      bool
		asCard      bool
	)

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Consolidate offer and update records into a pipeline report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			offers, err := loadRecords(offersPath)
			if err != nil {
				return fmt.Errorf("failed to load offers: %w", err)
			}

			var updates []domain.RawRecord
			if updatesPath != "" {
				updates, err = loadRecords(updatesPath)
				if err != nil {
					return fmt.Errorf("failed to load updates: %w", err)
				}
			}

			report, err := controller.Consolidate(cmd.Context(), offers, updates)
			if err != nil {
				return fmt.Errorf("consolidation failed: %w", err)
			}

			switch {
			case asJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case asCard:
				card, err := render.Card(report)
				if err != nil {
					return fmt.Errorf("failed to render card: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), card)
				return err
			default:
				return reporter.Handle(report)
			}
		},
	}

	cmd.Flags().StringVarP(&offersPath, "offers", "o", "", "Path to the offers JSON file (array of records)")
	cmd.Flags().StringVarP(&updatesPath, "updates", "u", "", "Path to the weekly updates JSON file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw report as JSON instead of formatted text")
	cmd.Flags().BoolVar(&asCard, "card", false, "Emit the HTML status card instead of formatted text")
	_ = cmd.MarkFlagRequired("offers")

	return cmd
}

func loadRecords(path string) ([]domain.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []domain.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}
