package ace

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
)

var (
	namedErrorPattern = regexp.MustCompile(
		`\b(ImportError|ValueError|KeyError|AttributeError|TypeError|FileNotFoundError|PermissionError)\b`)
	genericErrorPattern = regexp.MustCompile(`(?i)\b(failed|error|exception|traceback)\b`)
)

const errorContextChars = 100

type errorSignature struct {
	Kind    string
	Context string
}

// scanErrorPatterns finds known error types in free-form feedback, one
// signature per kind with surrounding context. When no named type matches
// but failure language is present, a single generic Failure signature is
// produced.
func scanErrorPatterns(feedback string) []errorSignature {
	if feedback == "" {
		return nil
	}
	var signatures []errorSignature
	seen := make(map[string]bool)
	for _, loc := range namedErrorPattern.FindAllStringIndex(feedback, -1) {
		kind := feedback[loc[0]:loc[1]]
		if seen[kind] {
			continue
		}
		seen[kind] = true
		signatures = append(signatures, errorSignature{
			Kind:    kind,
			Context: contextAround(feedback, loc[0], loc[1]),
		})
	}
	if len(signatures) == 0 {
		if loc := genericErrorPattern.FindStringIndex(feedback); loc != nil {
			signatures = append(signatures, errorSignature{
				Kind:    "Failure",
				Context: contextAround(feedback, loc[0], loc[1]),
			})
		}
	}
	return signatures
}

func signatureLabels(signatures []errorSignature) []string {
	labels := make([]string, len(signatures))
	for i, sig := range signatures {
		labels[i] = sig.Kind + ": " + sig.Context
	}
	return labels
}

func contextAround(s string, start, end int) string {
	lo := start - errorContextChars
	if lo < 0 {
		lo = 0
	}
	hi := end + errorContextChars
	if hi > len(s) {
		hi = len(s)
	}
	for lo > 0 && !utf8.RuneStart(s[lo]) {
		lo--
	}
	for hi < len(s) && !utf8.RuneStart(s[hi]) {
		hi++
	}
	return strings.TrimSpace(s[lo:hi])
}

// Insight is one sentence of reviewer feedback worth keeping.
type Insight struct {
	Category   playbookentry.Category
	Content    string
	Confidence float64
}

// Bucket order matters: "should use X" is a best practice, not a bare
// pattern rule.
var insightBuckets = []struct {
	category playbookentry.Category
	keywords []string
}{
	{playbookentry.CategoryBestPractices, []string{"prefer", "recommend", "should use"}},
	{playbookentry.CategoryGotchas, []string{"careful", "watch out", "beware", "caution"}},
	{playbookentry.CategoryPatterns, []string{"always", "never", "must", "should", "make sure"}},
}

func extractInsights(feedback string, confidence float64) []Insight {
	var insights []Insight
	for _, sentence := range splitSentences(feedback) {
		lower := strings.ToLower(sentence)
		for _, bucket := range insightBuckets {
			if containsAny(lower, bucket.keywords) {
				insights = append(insights, Insight{
					Category:   bucket.category,
					Content:    sentence,
					Confidence: confidence,
				})
				break
			}
		}
	}
	return insights
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Reflection is what the reflector mined from one stored memory.
type Reflection struct {
	Errors        []errorSignature
	Insights      []Insight
	LinkedEntries int
}

// Reflector relates a fresh memory to the ticket's existing playbook.
type Reflector struct {
	db     *database.Client
	config *config.ACEConfig
	logger *slog.Logger
}

// Reflect extracts error signatures and insights from the memory's
// feedback, then links the memory into nearby active playbook entries of
// the same ticket. A search failure still returns the extracted material
// so later phases can run on it.
func (r *Reflector) Reflect(ctx context.Context, tsk *ent.Task, memory *ent.TaskMemory) (*Reflection, error) {
	feedback := ""
	if memory.Feedback != nil {
		feedback = *memory.Feedback
	}
	reflection := &Reflection{
		Errors:   scanErrorPatterns(feedback),
		Insights: extractInsights(feedback, r.config.InsightConfidence),
	}

	emb := memory.ContextEmbedding.Slice()
	if isZeroVector(emb) {
		return reflection, nil
	}
	neighbors, err := database.SearchPlaybookNeighbors(ctx, r.db.DB(), emb, tsk.TicketID,
		r.config.PlaybookLinkThreshold, r.config.PlaybookLinkTopK)
	if err != nil {
		return reflection, fmt.Errorf("playbook link search failed: %w", err)
	}
	for _, neighbor := range neighbors {
		if err := r.linkMemory(ctx, neighbor.EntryID, memory.ID); err != nil {
			r.logger.Warn("Failed to link memory to playbook entry",
				"entry_id", neighbor.EntryID, "memory_id", memory.ID, "error", err)
			continue
		}
		reflection.LinkedEntries++
	}
	return reflection, nil
}

func (r *Reflector) linkMemory(ctx context.Context, entryID, memoryID string) error {
	entry, err := r.db.PlaybookEntry.Get(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to get playbook entry: %w", err)
	}
	for _, id := range entry.SupportingMemoryIds {
		if id == memoryID {
			return nil
		}
	}
	ids := append(append([]string(nil), entry.SupportingMemoryIds...), memoryID)
	return r.db.PlaybookEntry.UpdateOneID(entryID).SetSupportingMemoryIds(ids).Exec(ctx)
}

func isZeroVector(vec []float32) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}
