// Package templates stores the stub templates used by the generators and
// renders them by literal placeholder substitution.
package templates

// StubName identifies a stub template.
type StubName string

// Placeholders maps a placeholder key (without the surrounding $) to its
// replacement text. Built fresh for every render.
type Placeholders map[string]string

// Source describes where a stub was loaded from.
type Source string

const (
	// SourceEmbedded is a stub compiled into the binary.
	SourceEmbedded Source = "embedded"

	// SourceOverride is a stub from the user's override directory.
	SourceOverride Source = "override"
)

// Stub is a loaded stub template.
type Stub struct {
	// Name is the stub identifier.
	Name StubName

	// Content is the raw stub text with $KEY$ tokens.
	Content string

	// Source is where the stub was found.
	Source Source

	// Path is the file the stub was read from.
	Path string
}
