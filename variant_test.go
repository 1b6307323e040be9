// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import (
	"errors"
	"reflect"
	"testing"
)

func TestVariantScalarRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    *Variant
	}{
		{"null", &Variant{}},
		{"Int32 scalar", &Variant{Type: TypeIDInt32, Scalar: int32(-42)}},
		{"Double scalar", &Variant{Type: TypeIDDouble, Scalar: 2.5}},
		{"UInt32 array", &Variant{Type: TypeIDUInt32, Array: []interface{}{uint32(1), uint32(2), uint32(3)}}},
		{"empty array", &Variant{Type: TypeIDUInt32, Array: []interface{}{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(make([]byte, 128))
			if err := EncodeVariant(w, tt.v, nil, nil); err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodeVariant(NewReader(w.Bytes()), nil, nil)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.v) {
				t.Errorf("got %+v, want %+v", got, tt.v)
			}
			if size := CalcSizeVariant(tt.v); size != len(w.Bytes()) {
				t.Errorf("CalcSizeVariant = %d, want %d", size, len(w.Bytes()))
			}
		})
	}
}

func TestVariantArrayWithDimensions(t *testing.T) {
	v := &Variant{
		Type:       TypeIDInt32,
		Array:      []interface{}{int32(1), int32(2), int32(3), int32(4)},
		Dimensions: []int32{2, 2},
	}
	w := NewWriter(make([]byte, 128))
	if err := EncodeVariant(w, v, nil, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeVariant(NewReader(w.Bytes()), nil, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("got %+v, want %+v", got, v)
	}
}

func TestVariantDimensionMismatch(t *testing.T) {
	v := &Variant{
		Type:       TypeIDInt32,
		Array:      []interface{}{int32(1), int32(2), int32(3)},
		Dimensions: []int32{2, 2},
	}
	w := NewWriter(make([]byte, 128))
	err := EncodeVariant(w, v, nil, nil)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestVariantNestedScalarRejected(t *testing.T) {
	v := &Variant{Type: TypeIDVariant, Scalar: &Variant{Type: TypeIDInt32, Scalar: int32(1)}}
	w := NewWriter(make([]byte, 64))
	err := EncodeVariant(w, v, nil, nil)
	if !errors.Is(err, ErrVariantNestedScalar) {
		t.Errorf("got %v, want ErrVariantNestedScalar", err)
	}
}

func TestVariantNestedArrayAllowed(t *testing.T) {
	inner := &Variant{Type: TypeIDInt32, Scalar: int32(7)}
	v := &Variant{Type: TypeIDVariant, Array: []interface{}{inner}}
	w := NewWriter(make([]byte, 128))
	if err := EncodeVariant(w, v, nil, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeVariant(NewReader(w.Bytes()), nil, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("got %+v, want %+v", got, v)
	}
}

func TestVariantUnknownBuiltinType(t *testing.T) {
	w := NewWriter(make([]byte, 4))
	if err := w.WriteByte(63); err != nil {
		t.Fatalf("setup: %v", err)
	}
	_, err := DecodeVariant(NewReader(w.Bytes()), nil, nil)
	if !errors.Is(err, ErrUnknownBuiltinType) {
		t.Errorf("got %v, want ErrUnknownBuiltinType", err)
	}
}
