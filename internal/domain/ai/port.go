package ai

import "context"

// Client is the analysis collaborator. Both calls take the newline-joined
// "question: answer" rendering of one session's answers and return
// free-form markdown.
type Client interface {
	// ShortAnalysis is the ~300-400 word summary shown on completion.
	ShortAnalysis(ctx context.Context, formattedAnswers string) (string, error)
	// ComprehensiveAnalysis is the long report variant with the fixed
	// section outline, used for the emailed PDF.
	ComprehensiveAnalysis(ctx context.Context, formattedAnswers string) (string, error)
}
