package splitting

import "context"

// ToolRunner abstracts the external audio binaries the pipeline shells out to,
// so tests can substitute fakes instead of invoking real tools.
type ToolRunner interface {
	// Run executes tool with args inside dir and returns its combined output.
	// A non-zero exit is returned as an error carrying the tool name, its
	// arguments and the captured output.
	Run(ctx context.Context, dir string, tool string, args ...string) ([]byte, error)
}
