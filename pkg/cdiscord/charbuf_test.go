/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf [32]byte
	n, err := EncodeCharbuf(buf[:], "hello, world")
	if err != nil {
		t.Fatalf("EncodeCharbuf failed: %v", err)
	}
	if n != len("hello, world") {
		t.Errorf("wrote %d bytes, want %d", n, len("hello, world"))
	}
	got, err := DecodeCharbuf(buf[:])
	if err != nil {
		t.Fatalf("DecodeCharbuf failed: %v", err)
	}
	if got != "hello, world" {
		t.Errorf("round trip got %q", got)
	}
}

func TestEncodeCharbufMaxLength(t *testing.T) {
	// Capacity minus one is the longest text that still leaves room
	// for the terminator.
	var buf [8]byte
	if _, err := EncodeCharbuf(buf[:], "1234567"); err != nil {
		t.Fatalf("EncodeCharbuf at max length failed: %v", err)
	}
	if buf[7] != 0 {
		t.Error("terminator byte was not NUL")
	}
	got, err := DecodeCharbuf(buf[:])
	if err != nil || got != "1234567" {
		t.Errorf("decode got %q, %v", got, err)
	}
}

func TestEncodeCharbufTooLarge(t *testing.T) {
	var buf [8]byte
	for i := range buf {
		buf[i] = 0xAA
	}
	before := buf

	if _, err := EncodeCharbuf(buf[:], "12345678"); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v, want ErrTooLarge", err)
	}
	if buf != before {
		t.Error("failed encode modified the buffer")
	}
}

func TestEncodeCharbufInteriorNul(t *testing.T) {
	var buf [8]byte
	for i := range buf {
		buf[i] = 0xAA
	}
	before := buf

	if _, err := EncodeCharbuf(buf[:], "a\x00b"); !errors.Is(err, ErrInteriorNul) {
		t.Fatalf("got %v, want ErrInteriorNul", err)
	}
	if buf != before {
		t.Error("failed encode modified the buffer")
	}
}

func TestEncodeCharbufNulFillsTail(t *testing.T) {
	var buf [16]byte
	for i := range buf {
		buf[i] = 0xAA
	}
	if _, err := EncodeCharbuf(buf[:], "hi"); err != nil {
		t.Fatalf("EncodeCharbuf failed: %v", err)
	}
	if !bytes.Equal(buf[2:], make([]byte, 14)) {
		t.Error("tail was not NUL-filled")
	}
}

func TestCharbufLenNoTerminator(t *testing.T) {
	buf := []byte{'a', 'b', 'c', 'd'}
	if n := CharbufLen(buf); n != 4 {
		t.Errorf("CharbufLen = %d, want full capacity 4", n)
	}
}

func TestDecodeCharbufInvalidUTF8(t *testing.T) {
	buf := []byte{0xFF, 0xFE, 0x00, 0x00}
	if _, err := DecodeCharbuf(buf); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("got %v, want ErrInvalidUTF8", err)
	}
}

func TestDecodeCString(t *testing.T) {
	b := []byte("native text\x00")
	got, err := DecodeCString(&b[0])
	if err != nil {
		t.Fatalf("DecodeCString failed: %v", err)
	}
	if got != "native text" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeCStringEmpty(t *testing.T) {
	b := []byte{0}
	got, err := DecodeCString(&b[0])
	if err != nil || got != "" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestDecodeCStringNil(t *testing.T) {
	if _, err := DecodeCString(nil); !errors.Is(err, ErrNilPointer) {
		t.Fatalf("got %v, want ErrNilPointer", err)
	}
}

func TestDecodeCStringInvalidUTF8(t *testing.T) {
	b := []byte{0xFF, 0xFE, 0x00}
	if _, err := DecodeCString(&b[0]); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("got %v, want ErrInvalidUTF8", err)
	}
}

func TestAppendNul(t *testing.T) {
	got, err := AppendNul("abc")
	if err != nil {
		t.Fatalf("AppendNul failed: %v", err)
	}
	if !bytes.Equal(got, []byte("abc\x00")) {
		t.Errorf("got %v", got)
	}
}

func TestAppendNulInterior(t *testing.T) {
	if _, err := AppendNul("a\x00b"); !errors.Is(err, ErrInteriorNul) {
		t.Fatalf("got %v, want ErrInteriorNul", err)
	}
}

func TestCloneBytesOwnership(t *testing.T) {
	src := []byte("payload")
	got := cloneBytes(&src[0], uint32(len(src)))
	src[0] = 'X'
	if string(got) != "payload" {
		t.Errorf("clone shares memory with source: %q", got)
	}
}

func TestCloneBytesNil(t *testing.T) {
	if got := cloneBytes(nil, 4); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	b := []byte{1}
	if got := cloneBytes(&b[0], 0); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
