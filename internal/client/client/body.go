package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Body is a response payload resolved once from its content type.
// It is either JSONBody or TextBody.
type Body interface {
	isBody()
	String() string
}

// JSONBody is a syntactically valid JSON payload.
type JSONBody struct {
	Raw json.RawMessage
}

// TextBody is any non-JSON payload, kept verbatim.
type TextBody struct {
	Text string
}

func (JSONBody) isBody() {}
func (TextBody) isBody() {}

func (b JSONBody) String() string { return string(b.Raw) }
func (b TextBody) String() string { return b.Text }

// Decode unmarshals the payload into v.
func (b JSONBody) Decode(v any) error {
	return json.Unmarshal(b.Raw, v)
}

// errorField returns the payload's string "error" member, if any.
func (b JSONBody) errorField() string {
	var payload struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(b.Raw, &payload); err != nil {
		return ""
	}
	s, _ := payload.Error.(string)
	return s
}

func isJSONContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "application/json")
}

// readBody drains r and resolves it into a Body. A JSON content type with
// an empty payload yields JSON null. ok is false when a JSON content type
// carried an unparsable payload.
func readBody(contentType string, r io.Reader) (body Body, ok bool, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("read response body: %w", err)
	}

	if !isJSONContentType(contentType) {
		return TextBody{Text: string(raw)}, true, nil
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		raw = []byte("null")
	}
	if !json.Valid(raw) {
		return TextBody{Text: string(raw)}, false, nil
	}
	return JSONBody{Raw: json.RawMessage(raw)}, true, nil
}

// encodeBody turns a request body into a reader. Strings, byte slices and
// readers are sent as is; anything else is JSON-encoded.
func encodeBody(v any) (io.Reader, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	case io.Reader:
		return b, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}
