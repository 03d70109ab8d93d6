package agentapi

import (
	"context"
	"io"
	"sync"

	ai "github.com/spetersoncode/agentchat"
)

// streamConn owns the live response body for one ChatStream call. Close
// is idempotent: the body is closed exactly once no matter how many
// paths reach teardown.
type streamConn struct {
	body io.ReadCloser
	once sync.Once
	err  error
}

func (c *streamConn) Close() error {
	c.once.Do(func() {
		c.err = c.body.Close()
	})
	return c.err
}

// ChatStream sends a conversation and returns a channel of streaming
// events decoded from the server's frame protocol. Events arrive in
// frame order. Protocol and parse errors are delivered as events with
// Err set and the stream continues; a transport error ends the stream
// without a Done event. Cancel via the context.
//
// Setup failures (the POST itself fails or the server rejects it) are
// returned directly; no channel is created.
func (c *Client) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	if len(messages) == 0 {
		return nil, ai.ErrEmptyInput
	}
	options := ai.ApplyOptions(opts...)

	resp, err := c.post(ctx, mapRequest(messages, options, true))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, classifyStatus(resp.StatusCode, raw)
	}

	conn := &streamConn{body: resp.Body}
	ch := make(chan ai.StreamEvent)
	go readStream(conn, ch)
	return ch, nil
}

// readStream drives one stream to completion: read chunks, reassemble
// lines, classify, deliver. Each delivered event is received by the
// caller before the next line is processed, so ordering matches frame
// order exactly.
func readStream(conn *streamConn, ch chan<- ai.StreamEvent) {
	defer close(ch)
	defer conn.Close()

	var dec lineDecoder
	buf := make([]byte, 4096)
	for {
		n, err := conn.body.Read(buf)
		if n > 0 {
			for _, line := range dec.Feed(buf[:n]) {
				ev, ok := classifyLine(line)
				if !ok {
					continue
				}
				if dispatch(ch, ev) {
					// End marker: close now and ignore anything the
					// server sends after it.
					return
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				// The server closed the connection without an end
				// marker. A residual unterminated line is still one
				// complete frame.
				if line, ok := dec.Flush(); ok {
					if ev, ok := classifyLine(line); ok && dispatch(ch, ev) {
						return
					}
				}
				ch <- ai.StreamEvent{Done: true}
				return
			}
			ch <- ai.StreamEvent{Err: ai.NewTransientError("stream read failed", 0, err)}
			return
		}
	}
}

// dispatch sends one decoded event and reports whether the stream ended.
func dispatch(ch chan<- ai.StreamEvent, ev frameEvent) bool {
	switch ev.kind {
	case eventEnd:
		ch <- ai.StreamEvent{Done: true}
		return true
	case eventError:
		ch <- ai.StreamEvent{Err: ev.err}
		return false
	default:
		ch <- ai.StreamEvent{Response: ev.response, SystemPrompt: ev.systemPrompt}
		return false
	}
}
