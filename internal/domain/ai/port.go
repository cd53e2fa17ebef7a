package ai

import "context"

// Analyzer sends contract text to the completion service and returns its raw output.
type Analyzer interface {
	AnalyzeContract(ctx context.Context, contractText string) (string, error)
}
