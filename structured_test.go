// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import (
	"reflect"
	"testing"
)

type testPoint struct {
	X    int32
	Y    int32
	Tags []uint16
}

func testPointDescriptor() *TypeDescriptor {
	return DescribeStruct("TestPoint", NewNumericNodeID(0, 9999), &testPoint{}, []MemberDescriptor{
		{Name: "X", Target: TypeIDInt32, FieldIndex: 0},
		{Name: "Y", Target: TypeIDInt32, FieldIndex: 1},
		{Name: "Tags", Target: TypeIDUInt16, IsArray: true, FieldIndex: 2},
	})
}

func TestStructuredRoundTrip(t *testing.T) {
	td := testPointDescriptor()
	want := &testPoint{X: 10, Y: -20, Tags: []uint16{1, 2, 3}}

	w := NewWriter(make([]byte, 128))
	if err := EncodeStructured(w, want, td, 0, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeStructured(NewReader(w.Bytes()), td, 0, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gotPoint, ok := got.(*testPoint)
	if !ok {
		t.Fatalf("got %T, want *testPoint", got)
	}
	if !reflect.DeepEqual(gotPoint, want) {
		t.Errorf("got %+v, want %+v", gotPoint, want)
	}
	if size := CalcSizeStructured(want, td); size != len(w.Bytes()) {
		t.Errorf("CalcSizeStructured = %d, want %d", size, len(w.Bytes()))
	}
}

func TestStructuredNilArray(t *testing.T) {
	td := testPointDescriptor()
	want := &testPoint{X: 1, Y: 2, Tags: nil}

	w := NewWriter(make([]byte, 64))
	if err := EncodeStructured(w, want, td, 0, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeStructured(NewReader(w.Bytes()), td, 0, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gotPoint := got.(*testPoint)
	if gotPoint.Tags != nil {
		t.Errorf("got %v, want nil", gotPoint.Tags)
	}
}

// recNode is a self-referential structured type used to exercise
// EncodeStructured/DecodeStructured's recursion limit.
type recNode struct {
	Val  int32
	Next *recNode
}

func recNodeDescriptor() *TypeDescriptor {
	td := DescribeStruct("RecNode", NewNumericNodeID(0, 1000), &recNode{}, nil)
	td.Members = []MemberDescriptor{
		{Name: "Val", Target: TypeIDInt32, FieldIndex: 0},
		{Name: "Next", Target: TypeIDStructured, Nested: td, FieldIndex: 1},
	}
	return td
}

func TestStructuredRecursionLimit(t *testing.T) {
	td := recNodeDescriptor()
	// Three levels deep: node0 -> node1 -> node2. With MaxRecursionDepth 1,
	// encoding node0 (depth 0) and node1 (depth 1) is allowed; recursing
	// into node2 (depth 2) must fail before any of its fields are touched.
	chain := &recNode{Val: 0, Next: &recNode{Val: 1, Next: &recNode{Val: 2}}}

	opts := &CodecOptions{MaxRecursionDepth: 1}
	w := NewWriter(make([]byte, 64))
	err := EncodeStructured(w, chain, td, 0, opts)
	if err != ErrRecursionLimit {
		t.Errorf("got %v, want ErrRecursionLimit", err)
	}
}
