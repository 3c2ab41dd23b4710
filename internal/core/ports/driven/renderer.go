package driven

// MarkupRenderer converts markdown into an HTML fragment.
type MarkupRenderer interface {
	// Render converts markdown into HTML. The result is a fragment, not a full document.
	Render(markdown []byte) ([]byte, error)
}
