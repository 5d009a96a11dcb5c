package templates

import "fmt"

// Stub identifiers.
const (
	// StubRepository is the plain repository class.
	StubRepository StubName = "repository"

	// StubRepositoryInvoke is the invokable repository class.
	StubRepositoryInvoke StubName = "repository-invoke"
)

// stubs is the internal registry of known stubs and their descriptions.
var stubs = map[StubName]string{
	StubRepository:       "Repository class",
	StubRepositoryInvoke: "Invokable repository class with __invoke()",
}

// SelectStub picks the repository stub for the invokable flag.
func SelectStub(invokable bool) StubName {
	if invokable {
		return StubRepositoryInvoke
	}
	return StubRepository
}

// Names returns all stub names in display order.
func Names() []StubName {
	return []StubName{StubRepository, StubRepositoryInvoke}
}

// IsValidStub checks if a stub name is known.
func IsValidStub(name StubName) bool {
	_, ok := stubs[name]
	return ok
}

// Describe returns the description of a known stub.
func Describe(name StubName) (string, error) {
	d, ok := stubs[name]
	if !ok {
		return "", fmt.Errorf("unknown stub %q", name)
	}
	return d, nil
}

// FileName returns the file name a stub is stored under.
func FileName(name StubName) string {
	return string(name) + ".stub"
}
