package domain

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// UnknownError is the sentinel raw message for values nothing can be
// extracted from. It is a normal value, never an error condition.
const UnknownError = "Unknown error"

// maxExtractDepth bounds recursion through error/cause nesting so
// self-referencing shapes degrade to the sentinel instead of recursing.
const maxExtractDepth = 10

// Extractor produces a best-effort raw message from an arbitrary error
// value: Go error chains (including JSON-RPC reverts), decoded JSON objects,
// plain strings, or anything serializable. The optional index lets it
// recognize RPC code fields that are themselves dictionary keys.
type Extractor struct {
	index *Index
}

// NewExtractor creates an extractor. A nil index disables code recognition
// but everything else works.
func NewExtractor(index *Index) *Extractor {
	return &Extractor{index: index}
}

// RawMessage extracts the raw message for v. Total: it never panics and
// never fails; unextractable values yield the UnknownError sentinel.
func (e *Extractor) RawMessage(v any) (raw string) {
	defer func() {
		if recover() != nil {
			raw = UnknownError
		}
	}()
	return e.extract(v, 0)
}

func (e *Extractor) extract(v any, depth int) string {
	if v == nil || depth > maxExtractDepth {
		return UnknownError
	}

	switch val := v.(type) {
	case error:
		return e.fromError(val, depth)
	case string:
		return val
	case map[string]any:
		return e.fromObject(val, depth)
	}

	// Structs and struct pointers are inspected through their JSON shape so
	// the same field priority applies to typed provider errors.
	if m := toObject(v); m != nil {
		return e.fromObject(m, depth)
	}

	return serialize(v)
}

// fromError walks a Go error chain. A revert-capable JSON-RPC error anywhere
// in the chain takes priority: its decoded revert reason, then its own
// message, then the top-level message. An RPC error code that is itself a
// dictionary key is returned verbatim so the matcher can do the numeric
// exact match. Otherwise the deepest extractable cause wins.
func (e *Extractor) fromError(err error, depth int) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason := revertReason(dataErr.ErrorData()); reason != "" {
			return reason
		}
		if msg := dataErr.Error(); msg != "" {
			return msg
		}
		if msg := err.Error(); msg != "" {
			return msg
		}
		return UnknownError
	}

	var codeErr rpc.Error
	if errors.As(err, &codeErr) {
		if code := strconv.Itoa(codeErr.ErrorCode()); e.index.HasKey(code) {
			return code
		}
	}

	if cause := errors.Unwrap(err); cause != nil {
		if raw := e.extract(cause, depth+1); raw != UnknownError {
			return raw
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownError
}

// fromObject applies the fixed field priority for plain objects:
// code → reason → data.message/data.reason → shortMessage → message →
// nested error → nested cause, then JSON serialization.
func (e *Extractor) fromObject(m map[string]any, depth int) string {
	if code, ok := m["code"]; ok {
		if s := scalarString(code); s != "" && e.index.HasKey(s) {
			return s
		}
	}

	if s, ok := stringField(m, "reason"); ok {
		return s
	}

	if data, ok := m["data"].(map[string]any); ok {
		if s, ok := stringField(data, "message"); ok {
			return s
		}
		if s, ok := stringField(data, "reason"); ok {
			return s
		}
	}

	if s, ok := stringField(m, "shortMessage"); ok {
		return s
	}
	if s, ok := stringField(m, "message"); ok {
		return s
	}

	for _, field := range []string{"error", "cause"} {
		if nested, ok := m[field]; ok && nested != nil {
			if raw := e.extract(nested, depth+1); raw != UnknownError {
				return raw
			}
		}
	}

	return serialize(m)
}

// revertReason decodes a solidity Error(string) revert payload carried in a
// JSON-RPC error's data field, in the shapes providers actually send: a hex
// string, raw bytes, or an object nesting either under message/reason/data.
func revertReason(data any) string {
	switch d := data.(type) {
	case string:
		if len(d) >= 2 && d[0] == '0' && (d[1] == 'x' || d[1] == 'X') {
			if b, err := hexutil.Decode(d); err == nil {
				if reason, err := abi.UnpackRevert(b); err == nil {
					return reason
				}
			}
			return ""
		}
		return d
	case []byte:
		if reason, err := abi.UnpackRevert(d); err == nil {
			return reason
		}
	case map[string]any:
		if s, ok := stringField(d, "message"); ok {
			return s
		}
		if s, ok := stringField(d, "reason"); ok {
			return s
		}
		if nested, ok := d["data"]; ok {
			return revertReason(nested)
		}
	}
	return ""
}

func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// scalarString renders a numeric-or-string code field. JSON decoding turns
// numbers into float64; integer codes must not pick up a fraction.
func scalarString(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case json.Number:
		return c.String()
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	}
	return ""
}

func toObject(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}

func serialize(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Circular structures and unsupported values land here.
		return UnknownError
	}
	if s := string(b); s != "null" {
		return s
	}
	return UnknownError
}
