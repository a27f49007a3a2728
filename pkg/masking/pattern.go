package masking

import (
	"log/slog"
	"regexp"
)

// Pattern is a regex masking rule before compilation.
type Pattern struct {
	Pattern     string
	Replacement string
	Description string
}

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns returns the regex masking rules the kernel ships with.
// They run over agent-submitted markdown and LLM-bound failure context, so
// they err toward over-masking: a scrubbed commit message is cheaper than a
// leaked credential.
func builtinPatterns() map[string]Pattern {
	return map[string]Pattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|pass)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"private_key": {
			Pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
			Description: "Private keys",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "PEM blocks (certificates and keys)",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
		"aws_access_key": {
			Pattern:     `(?i)(?:aws[_-]?access[_-]?key[_-]?id)["']?\s*[:=]\s*["']?(AKIA[A-Z0-9]{16})["']?`,
			Replacement: `"aws_access_key_id": "__MASKED_AWS_KEY__"`,
			Description: "AWS access keys",
		},
		"aws_secret_key": {
			Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
			Replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
			Description: "AWS secret keys",
		},
		"github_token": {
			Pattern:     `(?i)(?:github[_-]?token|gh[ps]_[A-Za-z0-9_]{36,255})`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		"slack_token": {
			Pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
			Replacement: `__MASKED_SLACK_TOKEN__`,
			Description: "Slack tokens",
		},
		"base64_secret": {
			Pattern:     `\b([A-Za-z0-9+/]{20,}={0,2})\b`,
			Replacement: `__MASKED_BASE64_VALUE__`,
			Description: "Base64 values (20+ chars)",
		},
	}
}

// builtinGroups maps group names to pattern and masker names. A group member
// is either a key of builtinPatterns or the name of a structural masker.
// base64_secret lives only in "all": it also swallows commit hashes and
// other long identifiers, which the default groups must not do.
func builtinGroups() map[string][]string {
	return map[string][]string{
		"basic":    {"api_key", "password"},
		"secrets":  {"api_key", "password", "token", "private_key", "secret_key", "env_assignment"},
		"security": {"api_key", "password", "token", "certificate", "ssh_key", "email", "env_assignment"},
		"cloud":    {"aws_access_key", "aws_secret_key", "api_key", "token"},
		"all": {
			"api_key", "password", "token", "private_key", "secret_key",
			"certificate", "ssh_key", "email", "aws_access_key", "aws_secret_key",
			"github_token", "slack_token", "base64_secret", "env_assignment",
		},
	}
}

// compilePattern compiles one named builtin pattern. Invalid regexes are
// logged and skipped rather than failing startup.
func compilePattern(name string, p Pattern) *CompiledPattern {
	compiled, err := regexp.Compile(p.Pattern)
	if err != nil {
		slog.Error("Failed to compile masking pattern, skipping",
			"pattern", name, "error", err)
		return nil
	}
	return &CompiledPattern{
		Name:        name,
		Regex:       compiled,
		Replacement: p.Replacement,
		Description: p.Description,
	}
}
