package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medreport/docapi/internal/document"
	"github.com/medreport/docapi/internal/extract"
	"github.com/medreport/docapi/internal/layout"
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract [document.json]",
	Short: "Extract the patient name from a document file",
	Long: `Read a document JSON file (id, title and pages of OCR words with
bounding boxes), reconstruct its reading order and extract the patient
name.

Examples:
  docapi extract report.json
  docapi extract report.json --format json
  docapi extract report.json --y-threshold 0.02 --feminine-titles`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		yThreshold := cfg.Extraction.YThreshold
		if cmd.Flags().Changed("y-threshold") {
			yThreshold, _ = cmd.Flags().GetFloat64("y-threshold")
		}

		feminineTitles := cfg.Extraction.FeminineTitles
		if cmd.Flags().Changed("feminine-titles") {
			feminineTitles, _ = cmd.Flags().GetBool("feminine-titles")
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
		name := extract.PatientName(words, feminineTitles)

		switch format {
		case "json":
			out := struct {
				DocumentID    string `json:"document_id"`
				ExtractedName string `json:"extracted_name"`
			}{DocumentID: doc.ID, ExtractedName: name}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		case "text", "":
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		default:
			return fmt.Errorf("invalid output format: %s (must be one of: text, json)", format)
		}
	},
}

// readDocumentFile loads and decodes a document JSON file.
func readDocumentFile(path string) (*document.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: CLI input path provided by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document file %s: %w", path, err)
	}
	return &doc, nil
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().Float64("y-threshold", 0.01,
		"maximum vertical distance between word centers to group them into the same line")
	extractCmd.Flags().Bool("feminine-titles", false, "include feminine medical titles in the forbidden set")
	extractCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
}
