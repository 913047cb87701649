package constants

const (
	// DefaultTemperature is the sampling temperature sent on every upstream request.
	DefaultTemperature = 0.7
	// DefaultTopP is the nucleus sampling value sent on every upstream request.
	DefaultTopP = 0.95
	// ThinkingBudget bounds thought tokens when a thinking-capable Gemini model
	// is asked to include thoughts.
	ThinkingBudget = 16000
)
