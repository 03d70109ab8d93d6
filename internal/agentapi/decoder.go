package agentapi

import (
	"bytes"
	"encoding/json"
	"strings"

	ai "github.com/spetersoncode/agentchat"
)

// framePrefix marks a protocol frame; anything else on the stream is
// keep-alive noise.
const framePrefix = "data: "

// endSentinel is the literal payload the server sends to end a stream.
// It is not JSON; the server emits the bare text "undefined" as its
// end-of-stream marker.
const endSentinel = "undefined"

// lineDecoder reassembles newline-delimited frames from arbitrarily
// chunked reads. Buffering is byte-level, so a UTF-8 rune split across
// two chunks stays intact and later characters are not corrupted.
type lineDecoder struct {
	buf []byte
}

// Feed appends a chunk and returns the complete lines it finishes, in
// order. The trailing partial line (no newline yet) stays buffered for
// the next chunk.
func (d *lineDecoder) Feed(chunk []byte) [][]byte {
	d.buf = append(d.buf, chunk...)
	var lines [][]byte
	for {
		i := bytes.IndexByte(d.buf, '\n')
		if i < 0 {
			return lines
		}
		line := append([]byte(nil), d.buf[:i]...)
		d.buf = d.buf[i+1:]
		lines = append(lines, line)
	}
}

// Flush drains the unterminated final line at end-of-input, if any.
func (d *lineDecoder) Flush() ([]byte, bool) {
	if len(d.buf) == 0 {
		return nil, false
	}
	line := d.buf
	d.buf = nil
	return line, true
}

// eventKind tags a classified frame.
type eventKind int

const (
	eventData eventKind = iota
	eventError
	eventEnd
)

// frameEvent is one classified frame, before projection into the public
// ai.StreamEvent shape.
type frameEvent struct {
	kind         eventKind
	response     string
	systemPrompt string
	err          error
}

// framePayload is the wire shape of a data or error frame. statusCode is
// kept raw so its presence can be distinguished from a zero value.
type framePayload struct {
	StatusCode   json.RawMessage `json:"statusCode"`
	Message      string          `json:"message"`
	Response     string          `json:"response"`
	SystemPrompt string          `json:"systemPrompt"`
}

// classifyLine maps one stream line to at most one event. It reports
// false for protocol noise: blank lines and lines without the frame
// prefix.
//
// The wire protocol is crude about termination and errors: the end
// marker is the literal text "undefined" and an error frame is any JSON
// object carrying a statusCode field. Classification here is structural
// (exact sentinel match, then JSON inspection), so a response body that
// merely contains those substrings is not misclassified.
func classifyLine(line []byte) (frameEvent, bool) {
	s := strings.TrimSpace(string(line))
	if s == "" || !strings.HasPrefix(s, framePrefix) {
		return frameEvent{}, false
	}
	payload := strings.TrimSpace(strings.TrimPrefix(s, framePrefix))

	if payload == endSentinel {
		return frameEvent{kind: eventEnd}, true
	}

	var frame framePayload
	if err := json.Unmarshal([]byte(payload), &frame); err != nil {
		return frameEvent{kind: eventError, err: &ai.ParseError{Raw: payload, Err: err}}, true
	}
	if frame.StatusCode != nil {
		var code int
		json.Unmarshal(frame.StatusCode, &code)
		return frameEvent{kind: eventError, err: &ai.ProtocolError{
			Code:    code,
			Message: frame.Message,
			Raw:     payload,
		}}, true
	}
	return frameEvent{kind: eventData, response: frame.Response, systemPrompt: frame.SystemPrompt}, true
}
