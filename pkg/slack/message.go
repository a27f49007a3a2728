package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

// DiagnosisInput carries the fields of a terminal diagnostic run that the
// channel message is built from.
type DiagnosisInput struct {
	RunID        string
	TicketID     string
	Trigger      string
	Status       string // completed, skipped, failed
	TasksCreated int
	TaskIDs      []string
	Error        string
}

// AnomalyInput carries the fields of a detected metric anomaly.
type AnomalyInput struct {
	MetricName   string
	Observed     float64
	BaselineMean float64
	ZScore       float64
	Severity     string // warning or critical
}

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"skipped":   ":fast_forward:",
	"failed":    ":x:",
}

var statusLabel = map[string]string{
	"completed": "Diagnosis Complete",
	"skipped":   "Diagnosis Skipped",
	"failed":    "Diagnosis Failed",
}

var severityEmoji = map[string]string{
	"warning":  ":warning:",
	"critical": ":rotating_light:",
}

func ticketURL(ticketID, dashboardURL string) string {
	return fmt.Sprintf("%s/tickets/%s", dashboardURL, ticketID)
}

// BuildDiagnosisMessage creates Block Kit blocks for a terminal diagnostic
// run notification. The header carries the ticket fingerprint so follow-up
// messages for the same ticket can thread under this one.
func BuildDiagnosisMessage(input DiagnosisInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Diagnosis " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s* for `%s`", emoji, label, TicketFingerprint(input.TicketID))
	if input.Trigger != "" {
		headerText += fmt.Sprintf("\nTrigger: `%s`", input.Trigger)
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	switch {
	case input.Status == "failed" && input.Error != "":
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, "*Error:*\n"+truncateForSlack(input.Error), false, false),
			nil, nil,
		))
	case input.TasksCreated > 0:
		noun := "tasks"
		if input.TasksCreated == 1 {
			noun = "task"
		}
		body := fmt.Sprintf("Spawned %d recovery %s", input.TasksCreated, noun)
		if len(input.TaskIDs) > 0 {
			body += ": `" + strings.Join(input.TaskIDs, "`, `") + "`"
		}
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(body), false, false),
			nil, nil,
		))
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Ticket", false, false))
	btn.URL = ticketURL(input.TicketID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildAnomalyMessage creates Block Kit blocks for a monitor anomaly
// notification.
func BuildAnomalyMessage(input AnomalyInput, dashboardURL string) []goslack.Block {
	emoji := severityEmoji[input.Severity]
	if emoji == "" {
		emoji = ":mag:"
	}

	text := fmt.Sprintf("%s *Anomaly detected* on `%s`\nObserved %.2f against baseline %.2f (z-score %.2f, %s)",
		emoji, input.MetricName, input.Observed, input.BaselineMean, input.ZScore, input.Severity)

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Dashboard", false, false))
	btn.URL = dashboardURL

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
		goslack.NewActionBlock("", btn),
	}
}

// truncateForSlack keeps block text under Slack's section limit. Cuts on
// rune boundaries so multi-byte characters are never split.
func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated, full detail in dashboard)_"
}
