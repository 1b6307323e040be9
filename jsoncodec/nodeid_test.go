// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"reflect"
	"testing"

	"github.com/opcua-pubsub/codec"
)

func TestNodeIDJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   ua.NodeID
	}{
		{"numeric default namespace", ua.NewNumericNodeID(0, 42)},
		{"numeric with namespace", ua.NewNumericNodeID(5, 100000)},
		{"string", ua.NewStringNodeID(1, "hello world")},
		{"guid", ua.NodeID{Namespace: 2, Kind: ua.NodeIDGUID, GUIDID: ua.Guid{Data1: 1, Data2: 2, Data3: 3, Data4: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}}},
		{"bytestring", ua.NodeID{Namespace: 3, Kind: ua.NodeIDByteString, ByteStringID: []byte{0xCA, 0xFE}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(nil)
			EncodeNodeID(w, tt.id)

			tokens, err := Tokenize(w.Bytes(), 0)
			if err != nil {
				t.Fatalf("tokenize: %v", err)
			}
			fields, err := objectFields(w.Bytes(), tokens, 0)
			if err != nil {
				t.Fatalf("objectFields: %v", err)
			}
			got, err := DecodeNodeID(fields)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.id) {
				t.Errorf("got %+v, want %+v", got, tt.id)
			}
		})
	}
}

func TestNodeIDJSONDefaultsOmitted(t *testing.T) {
	id := ua.NewNumericNodeID(0, 7)
	w := NewWriter(nil)
	EncodeNodeID(w, id)
	got := string(w.Bytes())
	want := `{"Id":7}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
