package constants

// Field bounds enforced by both extraction paths. Over-long values are
// truncated, never rejected.
const (
	// MaxSujetLen bounds the subject title, ellipsis included.
	MaxSujetLen = 100

	// MaxDescriptionLen bounds the free-text description.
	MaxDescriptionLen = 5000

	// MaxPromptChars bounds the document prefix sent to the model.
	MaxPromptChars = 6000

	// Ellipsis marks a truncated value.
	Ellipsis = "…"
)
