package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/offer-atlas/pkg/adapters"
	"github.com/de-tools/offer-atlas/pkg/models/api"
	"github.com/de-tools/offer-atlas/pkg/services/normalize"
	"github.com/spf13/cobra"
)

// NewNormalizeCmd previews column resolution and scalar normalization for a
// JSON record file without aggregating anything.
func NewNormalizeCmd() *cobra.Command {
	var offersPath string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Preview schema resolution and record normalization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			offers, err := loadRecords(offersPath)
			if err != nil {
				return fmt.Errorf("failed to load offers: %w", err)
			}

			schema := normalize.ResolveSchema(offers)
			normalized := normalize.NormalizeOffers(offers, schema)

			out := make([]api.NormalizedRecord, 0, len(normalized))
			for _, rec := range normalized {
				out = append(out, adapters.MapRecordDomainToApi(rec))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&offersPath, "offers", "o", "", "Path to the offers JSON file (array of records)")
	_ = cmd.MarkFlagRequired("offers")

	return cmd
}
