package tools

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/serwizz/splitter/src/features/splitting"
)

// ExecRunner implements splitting.ToolRunner by invoking real binaries.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() splitting.ToolRunner {
	return &ExecRunner{}
}

// Run executes tool with args inside dir and returns its combined output.
func (r *ExecRunner) Run(ctx context.Context, dir string, tool string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(tool); err != nil {
		return nil, fmt.Errorf("%s not found, install shntool/cuetools/sox and make sure it is on PATH: %w", tool, err)
	}

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s %s failed: %w: %s",
			tool, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return output, nil
}
