// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import (
	"bytes"
	"testing"
)

func TestWriterBoundsChecked(t *testing.T) {
	w := NewWriter(make([]byte, 4))
	if err := w.Write([]byte{1, 2, 3}); err != nil {
		t.Fatalf("write within bounds: %v", err)
	}
	if w.Pos() != 3 || w.Remaining() != 1 {
		t.Errorf("Pos/Remaining = %d/%d, want 3/1", w.Pos(), w.Remaining())
	}
	if err := w.Write([]byte{4, 5}); err != ErrOutsideBoundary {
		t.Errorf("write past end: got %v, want ErrOutsideBoundary", err)
	}
	// A failed write leaves the cursor untouched.
	if w.Pos() != 3 {
		t.Errorf("Pos after failed write = %d, want 3 (unchanged)", w.Pos())
	}
	if err := w.WriteByte(4); err != nil {
		t.Fatalf("WriteByte within bounds: %v", err)
	}
	if !bytes.Equal(w.Bytes(), []byte{1, 2, 3, 4}) {
		t.Errorf("Bytes() = %v, want [1 2 3 4]", w.Bytes())
	}
	if err := w.WriteByte(5); err != ErrOutsideBoundary {
		t.Errorf("WriteByte past end: got %v, want ErrOutsideBoundary", err)
	}
}

func TestReaderBoundsChecked(t *testing.T) {
	r := NewReader([]byte{10, 20, 30})
	b, err := r.ReadByte()
	if err != nil || b != 10 {
		t.Fatalf("ReadByte = (%d, %v), want (10, nil)", b, err)
	}
	if r.Pos() != 1 || r.Remaining() != 2 || r.Len() != 3 {
		t.Errorf("Pos/Remaining/Len = %d/%d/%d, want 1/2/3", r.Pos(), r.Remaining(), r.Len())
	}
	if _, err := r.Read(5); err != ErrOutsideBoundary {
		t.Errorf("read past end: got %v, want ErrOutsideBoundary", err)
	}
	if r.Pos() != 1 {
		t.Errorf("Pos after failed read = %d, want 1 (unchanged)", r.Pos())
	}
}

func TestReaderPeekByteDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{42})
	b, err := r.PeekByte()
	if err != nil || b != 42 {
		t.Fatalf("PeekByte = (%d, %v), want (42, nil)", b, err)
	}
	if r.Pos() != 0 {
		t.Errorf("Pos after PeekByte = %d, want 0", r.Pos())
	}
	if _, err := r.ReadByte(); err != nil {
		t.Fatalf("ReadByte after peek: %v", err)
	}
	if _, err := r.PeekByte(); err != ErrOutsideBoundary {
		t.Errorf("PeekByte at end: got %v, want ErrOutsideBoundary", err)
	}
}

func TestReaderSeekTo(t *testing.T) {
	r := NewReaderAt([]byte{1, 2, 3, 4}, 2)
	if r.Pos() != 2 {
		t.Fatalf("NewReaderAt Pos = %d, want 2", r.Pos())
	}
	if err := r.SeekTo(1); err != nil {
		t.Fatalf("SeekTo within bounds: %v", err)
	}
	b, _ := r.ReadByte()
	if b != 2 {
		t.Errorf("ReadByte after SeekTo(1) = %d, want 2", b)
	}
	if err := r.SeekTo(-1); err != ErrOutsideBoundary {
		t.Errorf("SeekTo(-1): got %v, want ErrOutsideBoundary", err)
	}
	if err := r.SeekTo(100); err != ErrOutsideBoundary {
		t.Errorf("SeekTo(100): got %v, want ErrOutsideBoundary", err)
	}
	// SeekTo to exactly the buffer length is valid (reader at EOF).
	if err := r.SeekTo(4); err != nil {
		t.Errorf("SeekTo(len(buf)): got %v, want nil", err)
	}
}

func TestReaderReadAliasesSource(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	r := NewReader(src)
	got, err := r.Read(2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got[0] = 99
	if src[0] != 99 {
		t.Errorf("Read did not alias the source buffer")
	}
}
