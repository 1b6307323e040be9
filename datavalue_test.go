// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import (
	"reflect"
	"testing"
)

func TestDataValueNullRoundTrip(t *testing.T) {
	d := &DataValue{}
	w := NewWriter(make([]byte, 16))
	if err := EncodeDataValue(w, d, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(w.Bytes()) != 1 {
		t.Fatalf("null DataValue should encode to a single mask byte, got %d bytes", len(w.Bytes()))
	}
	got, err := DecodeDataValue(NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.IsNull() {
		t.Errorf("got %+v, want null", got)
	}
}

func TestDataValueRoundTrip(t *testing.T) {
	status := StatusCode(0)
	srcTS := int64(132953952000000000)
	srvTS := int64(132953952100000000)
	srcPs := uint16(100)
	srvPs := uint16(200)
	d := &DataValue{
		Value:             &Variant{Type: TypeIDInt32, Scalar: int32(42)},
		Status:            &status,
		SourceTimestamp:   &srcTS,
		ServerTimestamp:   &srvTS,
		SourcePicoseconds: &srcPs,
		ServerPicoseconds: &srvPs,
	}
	w := NewWriter(make([]byte, 128))
	if err := EncodeDataValue(w, d, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDataValue(NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Errorf("got %+v, want %+v", got, d)
	}
	if size := CalcSizeDataValue(d); size != len(w.Bytes()) {
		t.Errorf("CalcSizeDataValue = %d, want %d", size, len(w.Bytes()))
	}
}

func TestDataValuePartialFields(t *testing.T) {
	status := StatusCode(0x80000000)
	d := &DataValue{Status: &status}
	w := NewWriter(make([]byte, 32))
	if err := EncodeDataValue(w, d, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDataValue(NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Value != nil || got.SourceTimestamp != nil {
		t.Errorf("expected only Status set, got %+v", got)
	}
	if got.Status == nil || *got.Status != status {
		t.Errorf("got status %+v, want %v", got.Status, status)
	}
}
