package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/droverhq/drover/pkg/services"
)

func TestMayOverlap(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		overlap bool
	}{
		{"equal literals", "src/auth/jwt.go", "src/auth/jwt.go", true},
		{"equal globs", "src/**", "src/**", true},
		{"globstar covers file", "src/auth/**", "src/auth/jwt.go", true},
		{"file under globstar, reversed", "src/auth/jwt.go", "src/auth/**", true},
		{"directory prefix", "src/auth", "src/auth/session/store.go", true},
		{"wildcard at shared depth", "src/*/handler.go", "src/auth/handler.go", true},
		{"extension glob", "src/auth/*.go", "src/auth/jwt.go", true},
		{"charclass counts as wildcard", "src/[ab]uth/jwt.go", "src/auth/jwt.go", true},
		{"disjoint directories", "src/auth/**", "src/billing/**", false},
		{"disjoint files", "src/auth/jwt.go", "src/auth/session.go", false},
		{"similar names are not prefixes", "src/auth", "src/auth2/x.go", false},
		{"disjoint before wildcard depth", "src/auth/*.go", "docs/readme.md", false},
		{"leading slash normalized", "/src/auth/**", "src/auth/jwt.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, MayOverlap(tt.a, tt.b))
			// The predicate is symmetric.
			assert.Equal(t, tt.overlap, MayOverlap(tt.b, tt.a))
		})
	}
}

func TestCheckSyntax(t *testing.T) {
	assert.NoError(t, CheckSyntax(nil))
	assert.NoError(t, CheckSyntax([]string{"src/**", "docs/*.md", "main.go"}))

	err := CheckSyntax([]string{"src/[unclosed"})
	assert.True(t, services.IsValidationError(err))

	err = CheckSyntax([]string{""})
	assert.True(t, services.IsValidationError(err))
}
