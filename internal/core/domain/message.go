package domain

// Role is the author of a conversation message.
type Role string

// Conversation roles understood by every model backend.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Message is a single entry in a conversation.
type Message struct {
	// Role is one of "system", "user", or "assistant".
	Role Role `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// Reply is the fully aggregated assistant answer for one turn.
type Reply struct {
	// Text is the concatenated payload of every well-formed stream frame.
	Text string `json:"reply"`
}
