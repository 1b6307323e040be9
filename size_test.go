// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import "testing"

func TestCalcSizeString(t *testing.T) {
	s := "widget"
	if got := calcSizeString(&s); got != 4+len(s) {
		t.Errorf("calcSizeString(%q) = %d, want %d", s, got, 4+len(s))
	}
	if got := calcSizeString(nil); got != 4 {
		t.Errorf("calcSizeString(nil) = %d, want 4", got)
	}
}

func TestCalcSizeByteString(t *testing.T) {
	b := []byte{1, 2, 3}
	if got := calcSizeByteString(b); got != 4+len(b) {
		t.Errorf("calcSizeByteString = %d, want %d", got, 4+len(b))
	}
	if got := calcSizeByteString(nil); got != 4 {
		t.Errorf("calcSizeByteString(nil) = %d, want 4", got)
	}
}

func TestCalcSizeNodeIDMatchesEncode(t *testing.T) {
	tests := []NodeID{
		NewNumericNodeID(0, 5),
		NewNumericNodeID(12, 300),
		NewNumericNodeID(4, 123456789),
		NewStringNodeID(1, "foobar"),
		{Namespace: 2, Kind: NodeIDGUID, GUIDID: Guid{Data1: 1}},
		{Namespace: 3, Kind: NodeIDByteString, ByteStringID: []byte{0xDE, 0xAD}},
	}
	for _, id := range tests {
		w := NewWriter(make([]byte, 64))
		if err := EncodeNodeID(w, id); err != nil {
			t.Fatalf("encode %+v: %v", id, err)
		}
		if got := calcSizeNodeID(id); got != len(w.Bytes()) {
			t.Errorf("calcSizeNodeID(%+v) = %d, want %d", id, got, len(w.Bytes()))
		}
	}
}

func TestCalcSizeExpandedNodeIDMatchesEncode(t *testing.T) {
	uri := "http://example.org/UA"
	idx := uint32(7)
	id := ExpandedNodeID{NodeID: NewNumericNodeID(1, 42), NamespaceURI: &uri, ServerIndex: &idx}

	w := NewWriter(make([]byte, 64))
	if err := EncodeExpandedNodeID(w, id); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := calcSizeExpandedNodeID(id); got != len(w.Bytes()) {
		t.Errorf("calcSizeExpandedNodeID = %d, want %d", got, len(w.Bytes()))
	}
}
