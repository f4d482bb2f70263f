package support

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// RegisterCLISteps wires up the command-line step definitions.
func (testCtx *TestContext) RegisterCLISteps(sc *godog.ScenarioContext) {
	sc.Step(`^a document file "([^"]*)" containing:$`, testCtx.aDocumentFileContaining)
	sc.Step(`^I run "([^"]*)"$`, testCtx.iRunCommand)
	sc.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	sc.Step(`^the command should fail$`, testCtx.theCommandShouldFail)
	sc.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
	sc.Step(`^the output should not contain "([^"]*)"$`, testCtx.theOutputShouldNotContain)
	sc.Step(`^the output should be empty$`, testCtx.theOutputShouldBeEmpty)
}

// aDocumentFileContaining writes a document JSON fixture from the
// scenario docstring to a temp file registered under the given name.
func (testCtx *TestContext) aDocumentFileContaining(name string, doc *godog.DocString) error {
	path := testCtx.GetTempFile(".json")
	if err := os.WriteFile(path, []byte(doc.Content), 0o600); err != nil {
		return fmt.Errorf("failed to write document fixture: %w", err)
	}
	testCtx.DocumentFiles[name] = path
	return nil
}

// iRunCommand executes a docapi CLI command. Occurrences of document
// fixture names registered by earlier steps are replaced with their
// real temp paths.
func (testCtx *TestContext) iRunCommand(command string) error {
	for name, path := range testCtx.DocumentFiles {
		command = strings.ReplaceAll(command, name, path)
	}

	parts := strings.Fields(command)
	if len(parts) == 0 || parts[0] != "docapi" {
		return fmt.Errorf("expected a docapi command, got: %s", command)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...) //nolint:gosec // G204: test commands come from feature files
	cmd.Dir = testCtx.WorkingDir
	cmd.Env = append(os.Environ(), testCtx.EnvVars...)

	output, err := cmd.CombinedOutput()

	testCtx.LastCommand = command
	testCtx.LastOutput = string(output)
	testCtx.LastError = err
	if cmd.ProcessState != nil {
		testCtx.LastExitCode = cmd.ProcessState.ExitCode()
	} else {
		testCtx.LastExitCode = -1
	}

	return nil
}

func (testCtx *TestContext) theCommandShouldSucceed() error {
	if testCtx.LastExitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d\noutput:\n%s", testCtx.LastExitCode, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theCommandShouldFail() error {
	if testCtx.LastExitCode == 0 {
		return fmt.Errorf("expected non-zero exit code\noutput:\n%s", testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(testCtx.LastOutput, expected) {
		return fmt.Errorf("expected output to contain %q\noutput:\n%s", expected, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldNotContain(unexpected string) error {
	if strings.Contains(testCtx.LastOutput, unexpected) {
		return fmt.Errorf("expected output to not contain %q\noutput:\n%s", unexpected, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldBeEmpty() error {
	if strings.TrimSpace(testCtx.LastOutput) != "" {
		return fmt.Errorf("expected empty output, got:\n%s", testCtx.LastOutput)
	}
	return nil
}
