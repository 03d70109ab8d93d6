// Package agentchat provides a client for a hosted agent chat API.
//
// An agent is a server-side configured model or persona identified by an
// id. The library sends conversations to an agent either as a single
// blocking request or as an incrementally delivered stream of events
// decoded from the server's newline-delimited frame protocol.
//
// Use the [github.com/spetersoncode/agentchat/client] package as the entry
// point.
//
// # Basic Usage
//
// Send a simple chat message:
//
//	c := client.New(client.Config{
//	    BaseURL:      "https://agents.example.com",
//	    APIKey:       os.Getenv("AGENT_API_KEY"),
//	    DefaultModel: "helpdesk-agent",
//	})
//
//	messages := []agentchat.Message{
//	    {Role: agentchat.RoleUser, Content: "What is the capital of France?"},
//	}
//
//	resp, err := c.Chat(ctx, messages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// # Streaming Responses
//
// For real-time output, use ChatStream:
//
//	stream, err := c.ChatStream(ctx, messages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for event := range stream {
//	    if event.Err != nil {
//	        log.Println(event.Err)
//	        continue
//	    }
//	    fmt.Print(event.Response)
//	}
//
// Protocol and parse errors arrive as events with Err set and the stream
// keeps going; a transport error is the final event on the channel. Cancel
// the stream by cancelling the context passed to ChatStream.
//
// # Configuration Options
//
// Customize requests with functional options:
//
//	resp, err := c.Chat(ctx, messages,
//	    agentchat.WithModel("research-agent"),
//	    agentchat.WithSession(sessionID),
//	    agentchat.WithMaxTokens(1000),
//	    agentchat.WithTemperature(0.7),
//	)
//
// # Sessions
//
// Conversation continuity is owned by the server. Pass a session id to
// continue a conversation:
//
//	sessionID := agentchat.GenerateSessionID()
//	resp, err := c.Chat(ctx, messages, agentchat.WithSession(sessionID))
package agentchat
