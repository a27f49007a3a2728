package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestTicketFingerprint(t *testing.T) {
	assert.Equal(t, "ticket:T-42", TicketFingerprint("T-42"))
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "Diagnosis COMPLETE for ticket",
			expected: "diagnosis complete for ticket",
		},
		{
			name:     "collapse whitespace",
			input:    "queue   depth\t\tanomaly\n\ndetected",
			expected: "queue depth anomaly detected",
		},
		{
			name:     "trim",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed case and whitespace",
			input:    "  Diagnosis   failed   for   ticket:T-9  ",
			expected: "diagnosis failed for ticket:t-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	tests := []struct {
		name     string
		msg      goslack.Message
		expected string
	}{
		{
			name: "text only",
			msg: goslack.Message{
				Msg: goslack.Msg{Text: "hello world"},
			},
			expected: "hello world",
		},
		{
			name: "text with attachment text",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "diagnosis",
					Attachments: []goslack.Attachment{
						{Text: "ticket:T-1"},
					},
				},
			},
			expected: "diagnosis ticket:T-1",
		},
		{
			name: "text with attachment fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "diagnosis",
					Attachments: []goslack.Attachment{
						{Fallback: "ticket:T-1 fallback"},
					},
				},
			},
			expected: "diagnosis ticket:T-1 fallback",
		},
		{
			name: "attachment with both text and fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Attachments: []goslack.Attachment{
						{Text: "att text", Fallback: "att fallback"},
					},
				},
			},
			expected: "att text att fallback",
		},
		{
			name:     "empty message",
			msg:      goslack.Message{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectMessageText(tt.msg))
		})
	}
}
