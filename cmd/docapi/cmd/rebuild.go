package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medreport/docapi/internal/layout"
)

// rebuildCmd represents the rebuild command.
var rebuildCmd = &cobra.Command{
	Use:   "rebuild [document.json]",
	Short: "Rebuild a document's reading order from its bounding boxes",
	Long: `Read a document JSON file and print its words in reconstructed
reading order (top-to-bottom, left-to-right, page by page).

Examples:
  docapi rebuild report.json
  docapi rebuild report.json --format json
  docapi rebuild report.json --y-threshold 0.02`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		yThreshold := cfg.Extraction.YThreshold
		if cmd.Flags().Changed("y-threshold") {
			yThreshold, _ = cmd.Flags().GetFloat64("y-threshold")
		}

		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}

		if yThreshold < 0 || yThreshold > 1 {
			return fmt.Errorf("invalid y-threshold: %g (must be between 0 and 1)", yThreshold)
		}

		doc, err := readDocumentFile(args[0])
		if err != nil {
			return err
		}

		words := layout.Reconstruct(doc, yThreshold)

		switch format {
		case "json":
			out := struct {
				DocumentID string   `json:"document_id"`
				Words      []string `json:"words"`
			}{DocumentID: doc.ID, Words: words}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		case "text", "":
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, " "))
			return nil
		default:
			return fmt.Errorf("invalid output format: %s (must be one of: text, json)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
	rebuildCmd.Flags().Float64("y-threshold", 0.01,
		"maximum vertical distance between word centers to group them into the same line")
	rebuildCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
}
