package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

// Mode controls how the renderer treats tokens with no placeholder value.
type Mode int

const (
	// Strict fails the render when a token has no value.
	Strict Mode = iota

	// Lenient leaves unresolved tokens in the output verbatim.
	Lenient
)

// Renderer renders stubs from a Store.
type Renderer struct {
	store Store
	mode  Mode
}

// NewRenderer creates a strict renderer over store.
func NewRenderer(store Store) *Renderer {
	return &Renderer{store: store, mode: Strict}
}

// WithMode returns a copy of r using mode.
func (r *Renderer) WithMode(mode Mode) *Renderer {
	out := *r
	out.mode = mode
	return &out
}

// Render loads the named stub and substitutes p into it.
func (r *Renderer) Render(name StubName, p Placeholders) (string, error) {
	stub, err := r.store.Load(name)
	if err != nil {
		return "", err
	}
	return r.RenderStub(stub, p)
}

// RenderStub substitutes p into an already loaded stub.
func (r *Renderer) RenderStub(stub Stub, p Placeholders) (string, error) {
	if r.mode == Strict {
		if missing := Unresolved(stub.Content, p); len(missing) > 0 {
			return "", oerrors.NewValidationError(
				fmt.Sprintf("stub %q references placeholders with no value: %s", stub.Name, strings.Join(missing, ", ")),
				stub.Path,
				"",
				"Remove the placeholders from the stub or use a stub written for this command.",
			)
		}
	}
	return Substitute(stub.Content, p), nil
}

// Substitute replaces every $KEY$ token in text whose key is in p with the
// mapped value. Tokens without a value are left as they are. Replacement is a
// single left-to-right pass, so values are never rescanned for tokens.
func Substitute(text string, p Placeholders) string {
	return tokenRegex.ReplaceAllStringFunc(text, func(token string) string {
		if v, ok := p[token[1:len(token)-1]]; ok {
			return v
		}
		return token
	})
}
