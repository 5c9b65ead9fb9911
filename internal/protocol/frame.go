// Package protocol implements the native messaging wire format used between
// the browser and passbridge: a 4-byte host-native-endian length prefix
// followed by a UTF-8 JSON payload, symmetric for requests and responses.
package protocol

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ReadMessage reads one length-prefixed JSON message from r.
//
// End-of-stream before the first prefix byte is an orderly shutdown by the
// browser, reported as io.EOF so callers can exit cleanly. A prefix or
// payload cut short after that point, or a payload that is not valid JSON,
// is a framing error.
func ReadMessage(r io.Reader) (json.RawMessage, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read length prefix: %w", err)
	}

	length := binary.NativeEndian.Uint32(prefix[:])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read %d-byte payload: %w", length, err)
	}
	if !json.Valid(payload) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}
	return json.RawMessage(payload), nil
}

// WriteMessage serializes v as JSON and writes it to w with a 4-byte
// host-native-endian length prefix. Nothing else may write to w; the
// browser treats any interleaved bytes as protocol corruption.
func WriteMessage(w io.Writer, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	var prefix [4]byte
	binary.NativeEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write length prefix: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}
