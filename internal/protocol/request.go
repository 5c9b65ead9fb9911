package protocol

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which request variant was decoded from the wire.
type Kind int

const (
	// KindShowDefault lists the whole password store (empty request array).
	KindShowDefault Kind = iota
	// KindShow shows a single store entry by key.
	KindShow
	// KindInsert creates or replaces an entry from a multi-line secret.
	KindInsert
	// KindGenerate creates an entry with a generated password.
	KindGenerate
	// KindGrepMetaURLs searches entries for URL-bearing metadata fields.
	KindGrepMetaURLs
	// KindOTP produces a one-time password for an entry.
	KindOTP
)

// String returns the lowercase name of the request kind.
func (k Kind) String() string {
	switch k {
	case KindShowDefault:
		return "show-default"
	case KindShow:
		return "show"
	case KindInsert:
		return "insert"
	case KindGenerate:
		return "generate"
	case KindGrepMetaURLs:
		return "grep-meta-urls"
	case KindOTP:
		return "otp"
	default:
		return "unknown"
	}
}

// Request is the decoded form of one framed message from the extension.
// Only the fields relevant to Kind are populated.
type Request struct {
	Kind       Kind
	Key        string   // Show, Insert, Generate, OTP: store entry path
	Secret     string   // Insert: multi-line payload delivered on stdin
	Length     string   // Generate: requested password length
	NoSymbols  bool     // Generate: restrict to alphanumeric characters
	FieldNames []string // GrepMetaURLs: metadata field names to search
}

// ParseRequest decodes a framed payload into a Request. The payload must be
// a JSON array; its first element (if any) selects the action. Arrays that
// match no recognized shape fall back to showing the first element as a key.
func ParseRequest(raw json.RawMessage) (Request, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}

	if len(elems) == 0 {
		return Request{Kind: KindShowDefault}, nil
	}

	action, ok := asString(elems[0])
	if !ok {
		return Request{}, fmt.Errorf("decode request: first element is not a string")
	}

	switch {
	case action == "insert":
		if len(elems) < 3 {
			return Request{}, fmt.Errorf("decode request: insert needs a path and a secret")
		}
		key, ok := asString(elems[1])
		if !ok {
			return Request{}, fmt.Errorf("decode request: insert path is not a string")
		}
		secret, ok := asString(elems[2])
		if !ok {
			return Request{}, fmt.Errorf("decode request: insert secret is not a string")
		}
		return Request{Kind: KindInsert, Key: key, Secret: secret}, nil

	case action == "generate":
		if len(elems) < 3 {
			return Request{}, fmt.Errorf("decode request: generate needs a path and a length")
		}
		key, ok := asString(elems[1])
		if !ok {
			return Request{}, fmt.Errorf("decode request: generate path is not a string")
		}
		length, ok := asScalar(elems[2])
		if !ok {
			return Request{}, fmt.Errorf("decode request: generate length is not a string or number")
		}
		req := Request{Kind: KindGenerate, Key: key, Length: length}
		for _, e := range elems[3:] {
			if flag, ok := asString(e); ok && flag == "-n" {
				req.NoSymbols = true
			}
		}
		return req, nil

	case action == "grepMetaUrls" && len(elems) == 2:
		var names []string
		if err := json.Unmarshal(elems[1], &names); err != nil {
			return Request{}, fmt.Errorf("decode request: grepMetaUrls field names: %w", err)
		}
		return Request{Kind: KindGrepMetaURLs, FieldNames: names}, nil

	case action == "otp" && len(elems) == 2:
		key, ok := asString(elems[1])
		if !ok {
			return Request{}, fmt.Errorf("decode request: otp key is not a string")
		}
		return Request{Kind: KindOTP, Key: key}, nil
	}

	// Any other shape is a plain lookup of the first element.
	return Request{Kind: KindShow, Key: action}, nil
}

// asString decodes a JSON string element.
func asString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// asScalar decodes a JSON string or number element into its textual form.
// The extension sends password lengths as strings, but numbers cost nothing
// to tolerate.
func asScalar(raw json.RawMessage) (string, bool) {
	if s, ok := asString(raw); ok {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", false
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return "", false
	}
	return n.String(), true
}
