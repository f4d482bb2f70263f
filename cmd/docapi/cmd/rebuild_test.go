package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildCommand(t *testing.T) {
	path := writeTestDocument(t)

	output, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"rebuild", path})
	require.NoError(t, err)
	assert.Contains(t, output, "Patient : Jean DUPONT Docteur MARTIN")
}

func TestRebuildCommandJSONFormat(t *testing.T) {
	path := writeTestDocument(t)

	output, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"rebuild", path, "--format", "json"})
	require.NoError(t, err)

	var result struct {
		DocumentID string   `json:"document_id"`
		Words      []string `json:"words"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, "consult-1", result.DocumentID)
	assert.Equal(t, []string{"Patient", ":", "Jean", "DUPONT", "Docteur", "MARTIN"}, result.Words)
}

func TestRebuildCommandInvalidThreshold(t *testing.T) {
	path := writeTestDocument(t)

	_, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"rebuild", path, "--y-threshold", "-0.5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid y-threshold")
}

func TestRebuildCommandRequiresArgument(t *testing.T) {
	_, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"rebuild"})
	require.Error(t, err)
}
