package domain

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/halilatilla/web3-error-humanizer/internal/dictionary"
)

// revertError mimics the JSON-RPC error shape go-ethereum clients surface
// for contract reverts (implements rpc.DataError).
type revertError struct {
	msg  string
	data any
}

func (e *revertError) Error() string  { return e.msg }
func (e *revertError) ErrorData() any { return e.data }

// codedError mimics a provider error carrying an EIP-1193 code
// (implements rpc.Error).
type codedError struct {
	msg  string
	code int
}

func (e *codedError) Error() string  { return e.msg }
func (e *codedError) ErrorCode() int { return e.code }

// packRevert ABI-encodes a solidity Error(string) revert payload:
// selector 0x08c379a0, then offset, length and padded string data.
func packRevert(reason string) string {
	word := func(n int) []byte {
		b := make([]byte, 32)
		big.NewInt(int64(n)).FillBytes(b)
		return b
	}
	data := []byte{0x08, 0xc3, 0x79, 0xa0}
	data = append(data, word(32)...)
	data = append(data, word(len(reason))...)
	padded := make([]byte, (len(reason)+31)/32*32)
	copy(padded, reason)
	data = append(data, padded...)
	return hexutil.Encode(data)
}

func extractorWith(keys ...string) *Extractor {
	entries := make([]dictionary.Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, dictionary.Entry{Key: k, Message: "msg"})
	}
	return NewExtractor(BuildIndex(entries))
}

func TestRawMessageNilAndStrings(t *testing.T) {
	e := NewExtractor(nil)

	if got := e.RawMessage(nil); got != UnknownError {
		t.Errorf("nil = %q, want sentinel", got)
	}
	if got := e.RawMessage("nonce too low"); got != "nonce too low" {
		t.Errorf("string = %q, want as-is", got)
	}
	if got := e.RawMessage(""); got != "" {
		t.Errorf("empty string = %q, want empty passthrough", got)
	}
}

func TestRawMessageRevertData(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "hex_encoded_revert_reason",
			err:  &revertError{msg: "execution reverted", data: packRevert("UniswapV2Router: EXPIRED")},
			want: "UniswapV2Router: EXPIRED",
		},
		{
			name: "plain_string_data",
			err:  &revertError{msg: "execution reverted", data: "INSUFFICIENT_OUTPUT_AMOUNT"},
			want: "INSUFFICIENT_OUTPUT_AMOUNT",
		},
		{
			name: "message_in_data_object",
			err:  &revertError{msg: "call failed", data: map[string]any{"message": "Ownable: caller is not the owner"}},
			want: "Ownable: caller is not the owner",
		},
		{
			name: "undecodable_data_falls_back_to_message",
			err:  &revertError{msg: "execution reverted", data: "0xdeadbeef"},
			want: "execution reverted",
		},
		{
			name: "wrapped_revert_found_through_chain",
			err:  fmt.Errorf("sending tx: %w", &revertError{msg: "execution reverted", data: packRevert("UniswapV2: LOCKED")}),
			want: "UniswapV2: LOCKED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.RawMessage(tt.err); got != tt.want {
				t.Errorf("RawMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawMessageKnownRPCCode(t *testing.T) {
	e := extractorWith("4001")

	err := &codedError{msg: "user denied transaction signature", code: 4001}
	if got := e.RawMessage(err); got != "4001" {
		t.Errorf("RawMessage = %q, want the code returned verbatim", got)
	}

	// Unknown codes fall through to the message.
	unknown := &codedError{msg: "something odd", code: 1234}
	if got := e.RawMessage(unknown); got != "something odd" {
		t.Errorf("RawMessage = %q, want the message", got)
	}
}

func TestRawMessageCauseChain(t *testing.T) {
	e := NewExtractor(nil)

	inner := errors.New("nonce too low")
	outer := fmt.Errorf("transaction failed: %w", inner)
	if got := e.RawMessage(outer); got != "nonce too low" {
		t.Errorf("RawMessage = %q, want the innermost cause", got)
	}

	// An unextractable cause falls back to the outer message.
	hollow := fmt.Errorf("rpc call failed: %w", errors.New(""))
	if got := e.RawMessage(hollow); got != "rpc call failed: " {
		t.Errorf("RawMessage = %q, want the outer message", got)
	}
}

func TestRawMessageObjectPriority(t *testing.T) {
	e := extractorWith("4001")

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"known_code_number", map[string]any{"code": 4001, "message": "denied"}, "4001"},
		{"known_code_float_from_json", map[string]any{"code": float64(4001)}, "4001"},
		{"known_code_string", map[string]any{"code": "4001"}, "4001"},
		{"unknown_code_falls_to_message", map[string]any{"code": 77, "message": "odd"}, "odd"},
		{"reason_over_message", map[string]any{"reason": "INSUFFICIENT_FUNDS", "message": "tx failed"}, "INSUFFICIENT_FUNDS"},
		{"data_message", map[string]any{"data": map[string]any{"message": "INSUFFICIENT_OUTPUT_AMOUNT"}}, "INSUFFICIENT_OUTPUT_AMOUNT"},
		{"data_reason", map[string]any{"data": map[string]any{"reason": "EXPIRED"}}, "EXPIRED"},
		{"short_message_over_message", map[string]any{"shortMessage": "short", "message": "long"}, "short"},
		{"message_alone", map[string]any{"message": "plain message"}, "plain message"},
		{"nested_error", map[string]any{"error": map[string]any{"message": "inner"}}, "inner"},
		{"nested_cause", map[string]any{"cause": "deep cause"}, "deep cause"},
		{"nested_unknown_rejected", map[string]any{"error": map[string]any{"irrelevant": true}, "cause": "usable"}, "usable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.RawMessage(tt.in); got != tt.want {
				t.Errorf("RawMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawMessageStructThroughJSONShape(t *testing.T) {
	e := NewExtractor(nil)

	in := struct {
		Reason string `json:"reason"`
	}{Reason: "INSUFFICIENT_LIQUIDITY"}

	if got := e.RawMessage(in); got != "INSUFFICIENT_LIQUIDITY" {
		t.Errorf("RawMessage = %q, want reason field via JSON shape", got)
	}
}

func TestRawMessageSerializationFallback(t *testing.T) {
	e := NewExtractor(nil)

	if got := e.RawMessage(42); got != "42" {
		t.Errorf("number = %q, want serialized form", got)
	}
	if got := e.RawMessage([]string{"a", "b"}); got != `["a","b"]` {
		t.Errorf("slice = %q, want serialized form", got)
	}

	// Circular structures cannot serialize and must degrade to the sentinel.
	circular := map[string]any{}
	circular["self"] = circular
	if got := e.RawMessage(circular); got != UnknownError {
		t.Errorf("circular = %q, want sentinel", got)
	}

	// Unserializable leaf values degrade the same way.
	if got := e.RawMessage(func() {}); got != UnknownError {
		t.Errorf("func = %q, want sentinel", got)
	}
}

func TestRawMessageNeverPanics(t *testing.T) {
	e := NewExtractor(nil)

	nasty := []any{
		nil,
		map[string]any{"cause": nil},
		make(chan int),
		map[string]any{"code": []int{1}},
	}
	for _, v := range nasty {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("RawMessage(%v) panicked: %v", v, r)
				}
			}()
			_ = e.RawMessage(v)
		}()
	}
}
