// Package results takes in worker deliverables. Per-task results carry their
// markdown body inline; workflow-level results reference a markdown file by
// path. Both forms pass the same format gate before anything reaches the
// database.
package results

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/droverhq/drover/pkg/services"
)

// MaxMarkdownBytes caps an inline deliverable body at 100 KiB.
const MaxMarkdownBytes = 100 * 1024

// ValidateMarkdown checks an inline deliverable body: non-empty, valid UTF-8,
// at most MaxMarkdownBytes.
func ValidateMarkdown(content string) error {
	if strings.TrimSpace(content) == "" {
		return services.NewValidationError("markdown_content", "required")
	}
	if len(content) > MaxMarkdownBytes {
		return services.NewValidationError("markdown_content",
			fmt.Sprintf("%d bytes exceeds the %d byte limit", len(content), MaxMarkdownBytes))
	}
	if !utf8.ValidString(content) {
		return services.NewValidationError("markdown_content", "not valid UTF-8")
	}
	return nil
}

// ValidateResultPath checks a workflow deliverable path. The path must name a
// markdown file and must not climb out of the workspace.
func ValidateResultPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return services.NewValidationError("markdown_file_path", "required")
	}
	if !strings.EqualFold(filepath.Ext(path), ".md") {
		return services.NewValidationError("markdown_file_path", "must point to a .md file")
	}
	// Backslashes are separators too: a path written for a Windows worker
	// must not smuggle a traversal past a Linux intake.
	normalized := strings.ReplaceAll(path, `\`, "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return services.NewValidationError("markdown_file_path", "path traversal is not allowed")
		}
	}
	return nil
}
