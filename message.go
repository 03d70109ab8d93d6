package agentchat

import "github.com/google/uuid"

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message represents a single message in a conversation.
//
// Only Role and Content are sent to the agent API; ID is a client-side
// correlation aid and never appears on the wire.
type Message struct {
	// ID is an optional unique identifier for the message.
	ID      string `json:"id,omitempty"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}

// GenerateSessionID creates a unique session identifier for starting a
// fresh server-side conversation. Sessions are opaque to this client;
// the server owns conversation continuity.
func GenerateSessionID() string {
	return "sess-" + uuid.New().String()
}

// Response represents a complete response from the agent API.
type Response struct {
	Content string `json:"content,omitempty"`
	// SystemPrompt is the server-reported system prompt for the agent,
	// when the server chooses to include it.
	SystemPrompt string `json:"systemPrompt,omitempty"`
}

// StreamEvent represents a single event in a streaming response.
//
// Exactly one of the three forms is populated per event: a data event
// carries Response (and optionally SystemPrompt), an error event carries
// Err, and the final event has Done set. Protocol and parse errors do not
// end the stream; the channel stays open and later frames still arrive.
// A transport error is the last event on the channel and Done is never
// sent for that stream.
type StreamEvent struct {
	// Response contains the response text for a data frame.
	Response string
	// SystemPrompt is the server-reported system prompt, if included.
	SystemPrompt string
	// Done indicates the stream has ended normally. No further events
	// follow; the channel is closed after this event.
	Done bool
	// Err contains any error that occurred during streaming.
	Err error
}
