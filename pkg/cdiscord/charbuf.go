/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"errors"
	"unicode/utf8"
	"unsafe"
)

// Marshalling errors. Outbound failures (encoding into a fixed buffer or
// building a C string) are reported before any native call is made;
// inbound failures cause the event carrying the text to be dropped.
var (
	ErrTooLarge    = errors.New("cdiscord: text does not fit the fixed buffer")
	ErrInteriorNul = errors.New("cdiscord: text contains an interior NUL byte")
	ErrInvalidUTF8 = errors.New("cdiscord: native text is not valid UTF-8")
	ErrNilPointer  = errors.New("cdiscord: nil native string pointer")
)

// CharbufLen returns the length of the text stored in a fixed-capacity
// buffer: the index of the first NUL byte, or the full capacity when no
// terminator is present.
func CharbufLen(buf []byte) int {
	for i, b := range buf {
		if b == 0 {
			return i
		}
	}
	return len(buf)
}

// DecodeCharbuf copies the NUL-bounded text out of a fixed buffer.
// Invalid UTF-8 is an error, never silently replaced: the caller decides
// whether to drop the surrounding value.
func DecodeCharbuf(buf []byte) (string, error) {
	return DecodeCharbufLen(buf, CharbufLen(buf))
}

// DecodeCharbufLen copies text of an explicit byte length out of a fixed
// buffer. Used for fields whose length is tracked alongside the buffer
// instead of via a terminator.
func DecodeCharbufLen(buf []byte, n int) (string, error) {
	if n < 0 || n > len(buf) {
		return "", ErrTooLarge
	}
	if !utf8.Valid(buf[:n]) {
		return "", ErrInvalidUTF8
	}
	return string(buf[:n]), nil
}

// EncodeCharbuf writes s into a fixed buffer, NUL-filling the unused
// tail, and returns the number of text bytes written. The text must be
// strictly shorter than the buffer so a terminator always fits, and must
// not contain NUL bytes. On failure the buffer is left untouched; there
// is no truncation path.
func EncodeCharbuf(dst []byte, s string) (int, error) {
	if len(s) >= len(dst) {
		return 0, ErrTooLarge
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return 0, ErrInteriorNul
		}
	}
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	return n, nil
}

// DecodeCString copies an owned Go string out of a NUL-terminated C
// string. The pointer is only read during this call; nothing retains it.
func DecodeCString(p *byte) (string, error) {
	if p == nil {
		return "", ErrNilPointer
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	if n == 0 {
		return "", nil
	}
	b := unsafe.Slice(p, n)
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// AppendNul builds the NUL-terminated byte form of s for an outbound
// const char* argument. Interior NUL bytes are rejected before any
// native call happens.
func AppendNul(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, ErrInteriorNul
		}
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}

// cloneBytes copies a native (pointer, length) buffer into owned memory.
// A nil pointer or zero length yields nil.
func cloneBytes(data *byte, length uint32) []byte {
	if data == nil || length == 0 {
		return nil
	}
	out := make([]byte, length)
	copy(out, unsafe.Slice(data, length))
	return out
}
