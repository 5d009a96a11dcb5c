package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStub(t *testing.T) {
	assert.Equal(t, StubRepository, SelectStub(false))
	assert.Equal(t, StubRepositoryInvoke, SelectStub(true))
}

func TestIsValidStub(t *testing.T) {
	tests := []struct {
		name string
		stub StubName
		want bool
	}{
		{"repository is valid", "repository", true},
		{"repository-invoke is valid", "repository-invoke", true},
		{"unknown is invalid", "controller", false},
		{"empty is invalid", "", false},
		{"case-sensitive", "Repository", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidStub(tt.stub))
		})
	}
}

func TestNamesAreAllValid(t *testing.T) {
	names := Names()
	assert.Len(t, names, 2)
	for _, n := range names {
		assert.True(t, IsValidStub(n), n)
		d, err := Describe(n)
		require.NoError(t, err)
		assert.NotEmpty(t, d)
	}

	_, err := Describe("controller")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "repository-invoke.stub", FileName(StubRepositoryInvoke))
}
