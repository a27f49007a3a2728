package config

// NotificationsConfig controls Slack delivery of kernel events: diagnosis
// outcomes and monitor anomalies. Off by default; enabling it requires a
// channel ID and a bot token in the configured environment variable.
type NotificationsConfig struct {
	// SlackEnabled turns Slack notifications on.
	SlackEnabled bool `yaml:"slack_enabled"`

	// SlackTokenEnv names the environment variable holding the bot token.
	// The token itself never appears in config files.
	SlackTokenEnv string `yaml:"slack_token_env"`

	// SlackChannel is the target channel ID (e.g. "C12345678").
	SlackChannel string `yaml:"slack_channel"`

	// DashboardURL is the base URL used to build ticket links in messages.
	DashboardURL string `yaml:"dashboard_url"`
}

// DefaultNotificationsConfig returns the built-in notification defaults.
func DefaultNotificationsConfig() *NotificationsConfig {
	return &NotificationsConfig{
		SlackEnabled:  false,
		SlackTokenEnv: "SLACK_BOT_TOKEN",
		DashboardURL:  "http://localhost:5173",
	}
}
