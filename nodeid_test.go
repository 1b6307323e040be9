// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import (
	"reflect"
	"testing"
)

func TestNodeIDRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   NodeID
	}{
		{"two-byte numeric", NewNumericNodeID(0, 5)},
		{"four-byte numeric", NewNumericNodeID(12, 300)},
		{"wide numeric", NewNumericNodeID(4, 123456789)},
		{"string", NewStringNodeID(1, "foobar")},
		{"guid", NodeID{Namespace: 2, Kind: NodeIDGUID, GUIDID: Guid{Data1: 1, Data2: 2, Data3: 3, Data4: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}}},
		{"bytestring", NodeID{Namespace: 3, Kind: NodeIDByteString, ByteStringID: []byte{0xDE, 0xAD, 0xBE, 0xEF}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(make([]byte, 64))
			if err := EncodeNodeID(w, tt.id); err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodeNodeID(NewReader(w.Bytes()), nil)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.id) {
				t.Errorf("got %+v, want %+v", got, tt.id)
			}
		})
	}
}

func TestExpandedNodeIDRoundTrip(t *testing.T) {
	uri := "http://example.org/UA"
	idx := uint32(7)
	want := ExpandedNodeID{
		NodeID:       NewNumericNodeID(1, 42),
		NamespaceURI: &uri,
		ServerIndex:  &idx,
	}
	w := NewWriter(make([]byte, 64))
	if err := EncodeExpandedNodeID(w, want); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeExpandedNodeID(NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got.NodeID, want.NodeID) || *got.NamespaceURI != *want.NamespaceURI || *got.ServerIndex != *want.ServerIndex {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNodeIDTightestTag(t *testing.T) {
	tests := []struct {
		name    string
		id      NodeID
		wantLen int
	}{
		{"two-byte", NewNumericNodeID(0, 5), 2},
		{"four-byte", NewNumericNodeID(1, 300), 4},
		{"numeric", NewNumericNodeID(1, 123456789), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(make([]byte, 64))
			if err := EncodeNodeID(w, tt.id); err != nil {
				t.Fatalf("encode: %v", err)
			}
			if len(w.Bytes()) != tt.wantLen {
				t.Errorf("got %d bytes, want %d", len(w.Bytes()), tt.wantLen)
			}
		})
	}
}
