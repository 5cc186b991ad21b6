package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// scriptTimeout bounds a single bridge invocation.
const scriptTimeout = 30 * time.Second

// Runner executes the NotebookLM bridge and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ScriptRunner runs the Python bridge script as a subprocess.
type ScriptRunner struct {
	// Python is the interpreter binary. Defaults to "python3".
	Python string

	// Script is the path to the bridge script.
	Script string
}

// NewScriptRunner creates a ScriptRunner for the given script path.
func NewScriptRunner(script string) *ScriptRunner {
	return &ScriptRunner{Python: "python3", Script: script}
}

// Run invokes the script with the given arguments and a 30 second
// deadline. The subprocess is killed when the deadline passes.
func (r *ScriptRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()

	python := r.Python
	if python == "" {
		python = "python3"
	}

	cmd := exec.CommandContext(ctx, python, append([]string{r.Script}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("request timeout after %s", scriptTimeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("script exited with code %d: %s", exitErr.ExitCode(), stderr.String())
		}
		return nil, fmt.Errorf("spawn script: %w", err)
	}

	return stdout.Bytes(), nil
}
