package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/agentchat"
	"github.com/spetersoncode/agentchat/client"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	baseURL := os.Getenv("AGENT_BASE_URL")
	apiKey := os.Getenv("AGENT_API_KEY")
	if baseURL == "" || apiKey == "" {
		fmt.Fprintln(os.Stderr, "set AGENT_BASE_URL and AGENT_API_KEY")
		os.Exit(1)
	}

	model := os.Getenv("AGENT_MODEL")
	if model == "" {
		model = "default"
	}

	c := client.New(client.Config{
		BaseURL:      baseURL,
		APIKey:       apiKey,
		DefaultModel: model,
	})

	messages := []agentchat.Message{
		{Role: agentchat.RoleUser, Content: "Say hello in 3 different languages, one per line."},
	}

	fmt.Println("=== Blocking ===")
	resp, err := c.Chat(ctx, messages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Println(resp.Content)
	}

	fmt.Println("\n=== Streaming ===")
	session := agentchat.GenerateSessionID()
	stream, err := c.ChatStream(ctx, messages, agentchat.WithSession(session))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	for event := range stream {
		switch {
		case event.Err != nil:
			fmt.Fprintf(os.Stderr, "\nStream error: %v\n", event.Err)
		case event.Done:
			fmt.Println("\n[done]")
		default:
			fmt.Print(event.Response)
		}
	}
}
