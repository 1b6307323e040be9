// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"testing"

	"github.com/opcua-pubsub/codec"
)

func TestDataValueJSONNull(t *testing.T) {
	w := NewWriter(nil)
	if err := EncodeDataValue(w, &ua.DataValue{}, true); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(w.Bytes()) != "null" {
		t.Errorf("got %s, want null", w.Bytes())
	}
}

func TestDataValueJSONRoundTrip(t *testing.T) {
	status := ua.StatusCode(0)
	srcTS := int64(137654523450000000)
	srcPs := uint16(50)
	d := &ua.DataValue{
		Value:             &ua.Variant{Type: ua.TypeIDInt32, Scalar: int32(7)},
		Status:            &status,
		SourceTimestamp:   &srcTS,
		SourcePicoseconds: &srcPs,
	}
	w := NewWriter(nil)
	if err := EncodeDataValue(w, d, true); err != nil {
		t.Fatalf("encode: %v", err)
	}
	tokens, err := Tokenize(w.Bytes(), 0)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	got, err := DecodeDataValue(w.Bytes(), tokens, 0, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Value == nil || got.Value.Scalar.(int32) != 7 {
		t.Errorf("got Value %+v, want Scalar=7", got.Value)
	}
	if got.Status == nil || *got.Status != status {
		t.Errorf("got Status %v, want %v", got.Status, status)
	}
	if got.SourceTimestamp == nil || *got.SourceTimestamp != srcTS {
		t.Errorf("got SourceTimestamp %v, want %v", got.SourceTimestamp, srcTS)
	}
	if got.SourcePicoseconds == nil || *got.SourcePicoseconds != srcPs {
		t.Errorf("got SourcePicoseconds %v, want %v", got.SourcePicoseconds, srcPs)
	}
	if got.ServerTimestamp != nil {
		t.Errorf("got ServerTimestamp %v, want nil", got.ServerTimestamp)
	}
}
