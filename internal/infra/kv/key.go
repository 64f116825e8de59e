package kv

import (
	"bytes"
	"strings"

	"reminder-scheduler/internal/pkg/errs"
)

const terminator byte = 0x00

var ErrInvalidKey = errs.New("kv: key part contains NUL byte")

// Key is an ordered tuple of string parts. Encoded keys compare bytewise in
// the same order as the tuples they came from, so a prefix of parts is also a
// byte prefix.
type Key []string

func NewKey(parts ...string) Key {
	return Key(parts)
}

// Append returns a new key with parts added; the receiver is not modified.
func (k Key) Append(parts ...string) Key {
	out := make(Key, 0, len(k)+len(parts))
	out = append(out, k...)
	return append(out, parts...)
}

func (k Key) Validate() error {
	for _, p := range k {
		if strings.IndexByte(p, terminator) >= 0 {
			return errs.Wrapf(ErrInvalidKey, "key %s", k)
		}
	}
	return nil
}

// Encode writes each part followed by a 0x00 terminator.
func (k Key) Encode() []byte {
	size := 0
	for _, p := range k {
		size += len(p) + 1
	}
	buf := make([]byte, 0, size)
	for _, p := range k {
		buf = append(buf, p...)
		buf = append(buf, terminator)
	}
	return buf
}

func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

func (k Key) Equal(other Key) bool {
	return len(k) == len(other) && k.HasPrefix(other)
}

func (k Key) String() string {
	return "[" + strings.Join(k, ", ") + "]"
}

func DecodeKey(b []byte) (Key, error) {
	if len(b) > 0 && b[len(b)-1] != terminator {
		return nil, errs.New("kv: unterminated key part")
	}
	parts := bytes.Split(b, []byte{terminator})
	// Split yields an empty trailing element after the last terminator.
	key := make(Key, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		key = append(key, string(p))
	}
	return key, nil
}

// prefixEnd returns the smallest byte string greater than every string
// starting with p, or nil when no such bound exists.
func prefixEnd(p []byte) []byte {
	end := bytes.Clone(p)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

func validateAll(keys []Key) error {
	for _, k := range keys {
		if err := k.Validate(); err != nil {
			return err
		}
	}
	return nil
}
