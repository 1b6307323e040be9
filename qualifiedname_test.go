// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import "testing"

func TestQualifiedNameRoundTrip(t *testing.T) {
	name := "widget"
	qn := QualifiedName{NamespaceIndex: 3, Name: &name}

	w := NewWriter(make([]byte, 32))
	if err := EncodeQualifiedName(w, qn); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeQualifiedName(NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.NamespaceIndex != qn.NamespaceIndex || got.Name == nil || *got.Name != *qn.Name {
		t.Errorf("got %+v, want %+v", got, qn)
	}
}

func TestQualifiedNameNilName(t *testing.T) {
	qn := QualifiedName{NamespaceIndex: 0, Name: nil}
	w := NewWriter(make([]byte, 16))
	if err := EncodeQualifiedName(w, qn); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeQualifiedName(NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != nil {
		t.Errorf("got Name %v, want nil", got.Name)
	}
}

func TestLocalizedTextRoundTrip(t *testing.T) {
	locale := "en-US"
	text := "Widget"
	lt := LocalizedText{Locale: &locale, Text: &text}

	w := NewWriter(make([]byte, 32))
	if err := EncodeLocalizedText(w, lt); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeLocalizedText(NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Locale == nil || *got.Locale != locale || got.Text == nil || *got.Text != text {
		t.Errorf("got %+v, want %+v", got, lt)
	}
}

func TestLocalizedTextOnlyText(t *testing.T) {
	text := "Widget"
	lt := LocalizedText{Text: &text}

	w := NewWriter(make([]byte, 32))
	if err := EncodeLocalizedText(w, lt); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(w.Bytes()) != 1+4+len(text) {
		t.Fatalf("unexpected encoded length %d", len(w.Bytes()))
	}
	got, err := DecodeLocalizedText(NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Locale != nil {
		t.Errorf("got Locale %v, want nil", got.Locale)
	}
	if got.Text == nil || *got.Text != text {
		t.Errorf("got Text %v, want %v", got.Text, text)
	}
}

func TestStatusCodeSeverity(t *testing.T) {
	tests := []struct {
		name   string
		code   StatusCode
		isGood bool
		isBad  bool
	}{
		{"good zero", Good0, true, false},
		{"uncertain", StatusCode(0x40000000), false, false},
		{"bad", StatusCode(0x80000000), false, true},
	}
	for _, tt := range tests {
		if got := tt.code.IsGood(); got != tt.isGood {
			t.Errorf("%s: IsGood() = %v, want %v", tt.name, got, tt.isGood)
		}
		if got := tt.code.IsBad(); got != tt.isBad {
			t.Errorf("%s: IsBad() = %v, want %v", tt.name, got, tt.isBad)
		}
	}
}

func TestStatusCodeRoundTrip(t *testing.T) {
	s := StatusCode(0x80AB0000)
	w := NewWriter(make([]byte, 4))
	if err := EncodeStatusCode(w, s); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeStatusCode(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != s {
		t.Errorf("got %v, want %v", got, s)
	}
}
