package domain

// LinkKind distinguishes the two gollum link shapes.
type LinkKind string

const (
	// LinkKindReference is an explicit [[text|ref]] link.
	LinkKindReference LinkKind = "reference"

	// LinkKindResource is an implicit [[dir/file]] page-relative resource.
	LinkKindResource LinkKind = "resource"
)

// LinkToken is a gollum link parsed out of raw markdown.
// It only exists while a page is being rewritten or previewed.
type LinkToken struct {
	// Kind is the link shape.
	Kind LinkKind

	// Raw is the matched source text including the brackets.
	Raw string

	// Text and Ref are set for reference links.
	Text string
	Ref  string

	// Dir and File are set for resource links.
	Dir  string
	File string
}
