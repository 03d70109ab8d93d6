// Package agentapi implements the wire protocol of the hosted agent chat
// API: a JSON POST for blocking requests and a newline-delimited
// "data: <payload>" frame stream for streaming requests.
package agentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	ai "github.com/spetersoncode/agentchat"
)

// chatPath is the single endpoint for both blocking and streaming chat.
const chatPath = "/v1/chat/completions"

// Client speaks the agent API wire protocol against one base URL.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// New creates a client for the agent API at the given base URL. The API
// key is sent as the "apikey" request header and nowhere else.
func New(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chat sends a conversation and returns the complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	if len(messages) == 0 {
		return nil, ai.ErrEmptyInput
	}
	options := ai.ApplyOptions(opts...)

	resp, err := c.post(ctx, mapRequest(messages, options, false))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ai.NewTransientError("failed to read response", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp.StatusCode, raw)
	}

	var wresp chatCompletionResponse
	if err := json.Unmarshal(raw, &wresp); err != nil {
		return nil, ai.NewPermanentError("failed to decode response", resp.StatusCode, err)
	}
	if len(wresp.Choices) == 0 {
		return nil, ai.NewPermanentError("response contained no choices", resp.StatusCode, nil)
	}

	return &ai.Response{Content: wresp.Choices[0].Message.Content}, nil
}

// post marshals the request body and issues the POST with the protocol
// headers attached.
func (c *Client) post(ctx context.Context, body map[string]any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, ai.NewUserInputError("failed to marshal request", 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(payload))
	if err != nil {
		return nil, ai.NewUserInputError("failed to create request", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ai.NewTransientError("request failed", 0, err)
	}
	return resp, nil
}
