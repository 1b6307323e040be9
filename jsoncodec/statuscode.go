// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import "github.com/opcua-pubsub/codec"

// EncodeStatusCode writes s as a bare number in reversible mode, or, in
// non-reversible mode, as null for Good(0) and
// {"Code":<u32>,"Symbol":<name>} otherwise (spec 4.11, scenario 5).
func EncodeStatusCode(w *Writer, s ua.StatusCode, reversible bool) {
	if reversible {
		w.WriteUint(uint64(uint32(s)))
		return
	}
	if s == ua.Good0 {
		w.writeString("null")
		return
	}
	w.writeString(`{"Code":`)
	w.WriteUint(uint64(uint32(s)))
	if name, ok := ua.StatusCodeName(s); ok {
		w.writeString(`,"Symbol":`)
		w.WriteQuotedString(name)
	}
	w.writeByte('}')
}

// DecodeStatusCode reads either wire form: a bare number (reversible) or
// an object/null (non-reversible). raw is the value token's exact text
// (no surrounding whitespace), and fields is non-nil only when raw names
// an object.
func DecodeStatusCode(raw string, fields map[string]string) (ua.StatusCode, error) {
	if raw == "null" {
		return ua.Good0, nil
	}
	if fields != nil {
		codeRaw, ok := fields["Code"]
		if !ok {
			return ua.Good0, decodingErrorf("StatusCode object missing Code field")
		}
		v, err := parseUint32(codeRaw)
		if err != nil {
			return ua.Good0, err
		}
		return ua.StatusCode(v), nil
	}
	v, err := parseUint32(raw)
	if err != nil {
		return ua.Good0, err
	}
	return ua.StatusCode(v), nil
}

func parseUint32(s string) (uint32, error) {
	var v uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, decodingErrorf("malformed unsigned integer %q", s)
		}
		v = v*10 + uint64(c-'0')
	}
	return uint32(v), nil
}
