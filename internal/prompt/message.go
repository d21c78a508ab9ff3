// Package prompt turns a user's stored profile and conversation into the ordered
// message list sent to the completion provider.
package prompt

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a provider-agnostic chat message.
type Message struct {
	Role    string
	Content string
}
