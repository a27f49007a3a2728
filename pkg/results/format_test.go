package results

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/droverhq/drover/pkg/services"
)

func TestValidateMarkdown(t *testing.T) {
	t.Run("accepts a plain markdown body", func(t *testing.T) {
		assert.NoError(t, ValidateMarkdown("# Done\n\nAll tests pass."))
	})

	t.Run("accepts multibyte text", func(t *testing.T) {
		assert.NoError(t, ValidateMarkdown("## Résumé ✓"))
	})

	t.Run("accepts a body exactly at the limit", func(t *testing.T) {
		assert.NoError(t, ValidateMarkdown(strings.Repeat("a", MaxMarkdownBytes)))
	})

	t.Run("rejects empty and whitespace-only bodies", func(t *testing.T) {
		assert.True(t, services.IsValidationError(ValidateMarkdown("")))
		assert.True(t, services.IsValidationError(ValidateMarkdown("  \n\t ")))
	})

	t.Run("rejects a body over the limit", func(t *testing.T) {
		err := ValidateMarkdown(strings.Repeat("a", MaxMarkdownBytes+1))
		assert.True(t, services.IsValidationError(err))
		assert.Contains(t, err.Error(), "exceeds")
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		err := ValidateMarkdown("# Report\n\xff\xfe")
		assert.True(t, services.IsValidationError(err))
		assert.Contains(t, err.Error(), "UTF-8")
	})
}

func TestValidateResultPath(t *testing.T) {
	t.Run("accepts markdown paths", func(t *testing.T) {
		assert.NoError(t, ValidateResultPath("summary.md"))
		assert.NoError(t, ValidateResultPath("docs/reports/final.md"))
		assert.NoError(t, ValidateResultPath("REPORT.MD"))
	})

	t.Run("dots inside a segment are not traversal", func(t *testing.T) {
		assert.NoError(t, ValidateResultPath("release..notes.md"))
		assert.NoError(t, ValidateResultPath("v1.2.3/changelog.md"))
	})

	t.Run("rejects empty paths", func(t *testing.T) {
		assert.True(t, services.IsValidationError(ValidateResultPath("")))
		assert.True(t, services.IsValidationError(ValidateResultPath("   ")))
	})

	t.Run("rejects non-markdown extensions", func(t *testing.T) {
		assert.True(t, services.IsValidationError(ValidateResultPath("summary.txt")))
		assert.True(t, services.IsValidationError(ValidateResultPath("summary")))
		assert.True(t, services.IsValidationError(ValidateResultPath("summary.md.bak")))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		assert.True(t, services.IsValidationError(ValidateResultPath("../secrets.md")))
		assert.True(t, services.IsValidationError(ValidateResultPath("reports/../../etc/passwd.md")))
		assert.True(t, services.IsValidationError(ValidateResultPath(`..\..\host.md`)))
	})
}
