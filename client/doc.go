// Package client provides the entry point for talking to a hosted agent API.
//
// The Client wraps the wire protocol and provides:
//
//   - Blocking chat: one request, one complete response
//   - Streaming chat: a channel of decoded frame events
//   - Event emission: observable operations via channel
//
// # Basic Usage
//
// Create a client with explicit base URL and API key:
//
//	c := client.New(client.Config{
//	    BaseURL:      os.Getenv("AGENT_BASE_URL"),
//	    APIKey:       os.Getenv("AGENT_API_KEY"),
//	    DefaultModel: "helpdesk-agent",
//	})
//
//	resp, err := c.Chat(ctx, []agentchat.Message{
//	    {Role: agentchat.RoleUser, Content: "Hello!"},
//	})
//
// # Streaming
//
// ChatStream returns a channel closed when the stream ends:
//
//	stream, err := c.ChatStream(ctx, messages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for event := range stream {
//	    switch {
//	    case event.Err != nil:
//	        log.Println(event.Err) // stream continues on protocol/parse errors
//	    case event.Done:
//	        // final event
//	    default:
//	        fmt.Print(event.Response)
//	    }
//	}
//
// Cancel an in-flight stream by cancelling the context. Each ChatStream
// call owns its own connection, so concurrent streams from one Client
// are safe.
//
// # Default Options
//
// Client-wide defaults apply to every request unless overridden:
//
//	c := client.New(cfg,
//	    client.WithDefaultTemperature(0.7),
//	    client.WithDefaultMaxTokens(1024),
//	)
//
// # Events
//
// Observe operations via an event channel:
//
//	events := make(chan client.Event, 100)
//	cfg.Events = events
//
//	go func() {
//	    for e := range events {
//	        fmt.Printf("[%s] %s took %v\n", e.Type, e.Operation, e.Duration)
//	    }
//	}()
package client
