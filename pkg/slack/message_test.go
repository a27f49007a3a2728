package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDiagnosisMessage_Completed(t *testing.T) {
	input := DiagnosisInput{
		RunID:        "run-1",
		TicketID:     "T-77",
		Trigger:      "blocked_tasks",
		Status:       "completed",
		TasksCreated: 2,
		TaskIDs:      []string{"task-a", "task-b"},
	}
	blocks := BuildDiagnosisMessage(input, "https://drover.example.com")

	require.Len(t, blocks, 3)

	header, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Diagnosis Complete")
	assert.Contains(t, header.Text.Text, "ticket:T-77")
	assert.Contains(t, header.Text.Text, "blocked_tasks")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "Spawned 2 recovery tasks")
	assert.Contains(t, body.Text.Text, "task-a")
	assert.Contains(t, body.Text.Text, "task-b")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Ticket", btn.Text.Text)
	assert.Equal(t, "https://drover.example.com/tickets/T-77", btn.URL)
}

func TestBuildDiagnosisMessage_SingleTask(t *testing.T) {
	input := DiagnosisInput{
		TicketID:     "T-1",
		Status:       "completed",
		TasksCreated: 1,
		TaskIDs:      []string{"task-a"},
	}
	blocks := BuildDiagnosisMessage(input, "https://drover.example.com")

	require.Len(t, blocks, 3)
	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "Spawned 1 recovery task")
	assert.NotContains(t, body.Text.Text, "recovery tasks")
}

func TestBuildDiagnosisMessage_Skipped(t *testing.T) {
	input := DiagnosisInput{
		TicketID: "T-2",
		Trigger:  "stuck_workflow",
		Status:   "skipped",
	}
	blocks := BuildDiagnosisMessage(input, "https://drover.example.com")

	require.Len(t, blocks, 2, "skipped runs spawn nothing, so there is no body section")
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":fast_forward:")
	assert.Contains(t, header.Text.Text, "Diagnosis Skipped")
}

func TestBuildDiagnosisMessage_Failed(t *testing.T) {
	input := DiagnosisInput{
		TicketID: "T-3",
		Status:   "failed",
		Error:    "diagnosis gateway timeout",
	}
	blocks := BuildDiagnosisMessage(input, "https://drover.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Diagnosis Failed")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "diagnosis gateway timeout")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Ticket", btn.Text.Text)
}

func TestBuildDiagnosisMessage_UnknownStatus(t *testing.T) {
	input := DiagnosisInput{
		TicketID: "T-4",
		Status:   "running",
	}
	blocks := BuildDiagnosisMessage(input, "https://drover.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":question:")
	assert.Contains(t, header.Text.Text, "Diagnosis running")
}

func TestBuildAnomalyMessage(t *testing.T) {
	input := AnomalyInput{
		MetricName:   "queue_depth",
		Observed:     240,
		BaselineMean: 80,
		ZScore:       4.1,
		Severity:     "critical",
	}
	blocks := BuildAnomalyMessage(input, "https://drover.example.com")

	require.Len(t, blocks, 2)

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":rotating_light:")
	assert.Contains(t, section.Text.Text, "queue_depth")
	assert.Contains(t, section.Text.Text, "240.00")
	assert.Contains(t, section.Text.Text, "80.00")
	assert.Contains(t, section.Text.Text, "z-score 4.10")

	action := blocks[1].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Dashboard", btn.Text.Text)
	assert.Equal(t, "https://drover.example.com", btn.URL)
}

func TestBuildAnomalyMessage_SeverityEmoji(t *testing.T) {
	warning := BuildAnomalyMessage(AnomalyInput{MetricName: "m", Severity: "warning"}, "https://d.example.com")
	assert.Contains(t, warning[0].(*goslack.SectionBlock).Text.Text, ":warning:")

	unknown := BuildAnomalyMessage(AnomalyInput{MetricName: "m", Severity: "odd"}, "https://d.example.com")
	assert.Contains(t, unknown[0].(*goslack.SectionBlock).Text.Text, ":mag:")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
