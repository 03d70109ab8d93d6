package agentapi

import ai "github.com/spetersoncode/agentchat"

// apiMessage is the role/content projection of a message. Anything else
// the caller put on the message stays client-side.
type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the body of a successful blocking call.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// mapRequest builds the request body. Optional fields are omitted
// entirely when unset rather than sent as null.
func mapRequest(messages []ai.Message, options *ai.Options, stream bool) map[string]any {
	wmessages := make([]apiMessage, 0, len(messages))
	for _, m := range messages {
		wmessages = append(wmessages, apiMessage{Role: string(m.Role), Content: m.Content})
	}

	m := map[string]any{
		"model":    options.Model,
		"messages": wmessages,
		"stream":   stream,
	}

	if options.SessionID != "" {
		m["sessionId"] = options.SessionID
	}
	if options.MaxTokens > 0 {
		m["maxTokens"] = options.MaxTokens
	}
	if options.Temperature != nil {
		m["temperature"] = *options.Temperature
	}
	return m
}
