// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"math"
	"strings"
	"testing"

	"github.com/opcua-pubsub/codec"
)

func TestWriteParseGuidRoundTrip(t *testing.T) {
	g := ua.Guid{Data1: 0x12345678, Data2: 0xABCD, Data3: 0xEF01, Data4: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}
	w := NewWriter(nil)
	w.WriteGuid(g)
	got, err := ParseGuid(string(w.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != g {
		t.Errorf("got %+v, want %+v", got, g)
	}
}

func TestWriteParseDateTimeRoundTrip(t *testing.T) {
	ticks := ua.TimeToDateTime(ua.DateTimeToTime(137654523450000000))
	w := NewWriter(nil)
	w.WriteDateTime(ticks)
	got, err := ParseDateTime(string(w.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != ticks {
		t.Errorf("got %d, want %d", got, ticks)
	}
}

func TestFloatNonNumericSentinels(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"NaN", math.NaN(), `"NaN"`},
		{"+Inf", math.Inf(1), `"Infinity"`},
		{"-Inf", math.Inf(-1), `"-Infinity"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(nil)
			w.WriteFloat64(tt.v)
			if string(w.Bytes()) != tt.want {
				t.Errorf("got %s, want %s", w.Bytes(), tt.want)
			}
			got, err := ParseFloat(string(w.Bytes()))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if tt.name == "NaN" {
				if !math.IsNaN(got) {
					t.Errorf("got %v, want NaN", got)
				}
			} else if got != tt.v {
				t.Errorf("got %v, want %v", got, tt.v)
			}
		})
	}
}

func TestWriteQuotedStringEscaping(t *testing.T) {
	w := NewWriter(nil)
	w.WriteQuotedString("a\"b\\c\nd")
	raw := strings.Trim(string(w.Bytes()), `"`)
	got, err := UnescapeString(raw)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if got != "a\"b\\c\nd" {
		t.Errorf("got %q, want %q", got, "a\"b\\c\nd")
	}
}

func TestWriteQuotedStringSurrogatePair(t *testing.T) {
	s := "\U0001F600" // outside the BMP, requires a surrogate pair
	w := NewWriter(nil)
	w.WriteQuotedString(s)
	raw := strings.Trim(string(w.Bytes()), `"`)
	got, err := UnescapeString(raw)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if got != s {
		t.Errorf("got %q, want %q", got, s)
	}
}

func TestByteStringRoundTrip(t *testing.T) {
	b := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	w := NewWriter(nil)
	w.WriteByteString(b)
	got, err := ParseByteString(string(w.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if string(got) != string(b) {
		t.Errorf("got %v, want %v", got, b)
	}
}

func TestByteStringNull(t *testing.T) {
	w := NewWriter(nil)
	w.WriteByteString(nil)
	if string(w.Bytes()) != "null" {
		t.Errorf("got %s, want null", w.Bytes())
	}
	got, err := ParseByteString("null")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
