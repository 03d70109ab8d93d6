package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ai "github.com/spetersoncode/agentchat"
	"github.com/spetersoncode/agentchat/internal/agentapi"
)

// Config holds configuration for creating a client.
type Config struct {
	// BaseURL is the root of the agent API, e.g. "https://agents.example.com".
	// It is fixed at construction; there is no package-level default.
	BaseURL string

	// APIKey authenticates requests. It is sent only as the "apikey"
	// request header, never in the body or URL.
	APIKey string

	// DefaultModel is the agent used when a request does not specify one
	// via agentchat.WithModel.
	DefaultModel string

	// HTTPClient overrides the HTTP client used for requests. If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned when a request is made without an API key configured.
type ErrMissingAPIKey struct{}

func (e *ErrMissingAPIKey) Error() string {
	return "no API key configured"
}

// ErrMissingBaseURL is returned when a request is made without a base URL configured.
type ErrMissingBaseURL struct{}

func (e *ErrMissingBaseURL) Error() string {
	return "no base URL configured"
}

// ErrNoModel is returned when no model is specified and no default is configured.
type ErrNoModel struct {
	Operation string
}

func (e *ErrNoModel) Error() string {
	return fmt.Sprintf("no model specified for %s: set client.Config.DefaultModel or use agentchat.WithModel()", e.Operation)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultTemperature sets the default temperature for chat requests.
// Per-request options override this default.
func WithDefaultTemperature(t float64) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, ai.WithTemperature(t))
	}
}

// WithDefaultMaxTokens sets the default max tokens for chat requests.
// Per-request options override this default.
func WithDefaultMaxTokens(n int) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, ai.WithMaxTokens(n))
	}
}

// WithDefaultChatOptions sets default options for all chat requests.
// Per-request options override these defaults.
func WithDefaultChatOptions(opts ...ai.Option) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, opts...)
	}
}

// Client is the entry point for talking to a hosted agent API.
// Each streaming call gets its own connection and decoder state, so one
// Client supports concurrent streams.
type Client struct {
	cfg             Config
	events          chan<- Event
	defaultChatOpts []ai.Option
	api             *agentapi.Client
}

// New creates a client with the given configuration. Configuration
// problems (missing key, missing base URL) surface on first use rather
// than here.
func New(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		cfg:    cfg,
		events: cfg.Events,
	}
	for _, opt := range opts {
		opt(c)
	}

	apiOpts := []agentapi.ClientOption{}
	if cfg.HTTPClient != nil {
		apiOpts = append(apiOpts, agentapi.WithHTTPClient(cfg.HTTPClient))
	}
	c.api = agentapi.New(cfg.BaseURL, cfg.APIKey, apiOpts...)
	return c
}

// checkConfig validates construction-time configuration for an operation.
func (c *Client) checkConfig() error {
	if c.cfg.BaseURL == "" {
		return &ErrMissingBaseURL{}
	}
	if c.cfg.APIKey == "" {
		return &ErrMissingAPIKey{}
	}
	return nil
}

// resolveOptions merges client defaults with per-request options and
// ensures a model is set.
func (c *Client) resolveOptions(operation string, opts []ai.Option) ([]ai.Option, string, error) {
	opts = append(append([]ai.Option{}, c.defaultChatOpts...), opts...)
	options := ai.ApplyOptions(opts...)

	model := options.Model
	if model == "" {
		model = c.cfg.DefaultModel
	}
	if model == "" {
		return nil, "", &ErrNoModel{Operation: operation}
	}
	if options.Model == "" {
		opts = append([]ai.Option{ai.WithModel(model)}, opts...)
	}
	return opts, model, nil
}

// Chat sends a conversation and returns the complete response.
// The model can be specified via agentchat.WithModel, or the configured
// DefaultModel is used. All failures come back as the error return; Chat
// never panics on transport or decode problems.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}
	opts, model, err := c.resolveOptions("chat", opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	emit(c.events, Event{
		Type:      EventRequestStart,
		Operation: "chat",
		Model:     model,
	})

	resp, err := c.api.Chat(ctx, messages, opts...)
	if err != nil {
		emit(c.events, Event{
			Type:      EventRequestError,
			Operation: "chat",
			Model:     model,
			Duration:  time.Since(start),
			Error:     err,
		})
		return nil, err
	}

	emit(c.events, Event{
		Type:      EventRequestComplete,
		Operation: "chat",
		Model:     model,
		Duration:  time.Since(start),
	})
	return resp, nil
}

// ChatStream sends a conversation and returns a channel of streaming
// events. The channel delivers events in frame order and is closed when
// the stream ends; see agentchat.StreamEvent for the event forms. Cancel
// the stream by cancelling ctx. Setup failures are returned directly and
// no channel is created.
func (c *Client) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}
	opts, model, err := c.resolveOptions("chat_stream", opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	emit(c.events, Event{
		Type:      EventRequestStart,
		Operation: "chat_stream",
		Model:     model,
	})

	ch, err := c.api.ChatStream(ctx, messages, opts...)
	if err != nil {
		emit(c.events, Event{
			Type:      EventRequestError,
			Operation: "chat_stream",
			Model:     model,
			Duration:  time.Since(start),
			Error:     err,
		})
		return nil, err
	}

	emit(c.events, Event{
		Type:      EventRequestComplete,
		Operation: "chat_stream",
		Model:     model,
		Duration:  time.Since(start),
	})
	return ch, nil
}
