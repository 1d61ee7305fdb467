package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// AuthTest verifies the bot's token; used as the readiness signal
	// before the scheduler runs its first cycle.
	AuthTest() (*slack.AuthTestResponse, error)

	// GetConversationInfo resolves a channel ID to channel metadata.
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
