// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"strconv"

	"github.com/opcua-pubsub/codec"
)

// EncodeDiagnosticInfo writes d as an object with one key per populated
// field, recursing into InnerDiagnosticInfo, or null if no field is set.
func EncodeDiagnosticInfo(w *Writer, d *ua.DiagnosticInfo, reversible bool) error {
	return encodeDiagnosticInfo(w, d, 0, reversible)
}

func encodeDiagnosticInfo(w *Writer, d *ua.DiagnosticInfo, depth int, reversible bool) error {
	if d.IsNull() {
		w.writeString("null")
		return nil
	}
	if depth > maxDiagnosticInfoDepth {
		return ua.ErrRecursionLimit
	}
	w.writeByte('{')
	wrote := false
	comma := func() {
		if wrote {
			w.writeByte(',')
		}
		wrote = true
	}
	if d.SymbolicID != nil {
		comma()
		w.writeString(`"SymbolicId":`)
		w.WriteInt(int64(*d.SymbolicID))
	}
	if d.NamespaceURI != nil {
		comma()
		w.writeString(`"NamespaceUri":`)
		w.WriteInt(int64(*d.NamespaceURI))
	}
	if d.LocalizedText != nil {
		comma()
		w.writeString(`"LocalizedText":`)
		w.WriteInt(int64(*d.LocalizedText))
	}
	if d.Locale != nil {
		comma()
		w.writeString(`"Locale":`)
		w.WriteInt(int64(*d.Locale))
	}
	if d.AdditionalInfo != nil {
		comma()
		w.writeString(`"AdditionalInfo":`)
		w.WriteQuotedString(*d.AdditionalInfo)
	}
	if d.InnerStatusCode != nil {
		comma()
		w.writeString(`"InnerStatusCode":`)
		EncodeStatusCode(w, *d.InnerStatusCode, reversible)
	}
	if d.InnerDiagnosticInfo != nil {
		comma()
		w.writeString(`"InnerDiagnosticInfo":`)
		if err := encodeDiagnosticInfo(w, d.InnerDiagnosticInfo, depth+1, reversible); err != nil {
			return err
		}
	}
	w.writeByte('}')
	return nil
}

// maxDiagnosticInfoDepth bounds recursion for callers that pass no
// CodecOptions (EncodeBuiltinJSON's signature carries none); it matches
// the binary codec's DefaultMaxRecursionDepth.
const maxDiagnosticInfoDepth = ua.DefaultMaxRecursionDepth

// DecodeDiagnosticInfo reads the object EncodeDiagnosticInfo produces, or
// null.
func DecodeDiagnosticInfo(buf []byte, tokens []Token, idx int, opts *ua.CodecOptions) (*ua.DiagnosticInfo, error) {
	return decodeDiagnosticInfo(buf, tokens, idx, 0, opts)
}

func decodeDiagnosticInfo(buf []byte, tokens []Token, idx int, depth int, opts *ua.CodecOptions) (*ua.DiagnosticInfo, error) {
	if tokenText(buf, tokens[idx]) == "null" {
		return &ua.DiagnosticInfo{}, nil
	}
	o := opts.Resolved()
	if depth > o.MaxRecursionDepth {
		return nil, ua.ErrRecursionLimit
	}
	d := &ua.DiagnosticInfo{}
	if raw, ok := findKey(buf, tokens, idx, "SymbolicId"); ok {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, decodingErrorf("malformed SymbolicId: %v", err)
		}
		n := int32(v)
		d.SymbolicID = &n
	}
	if raw, ok := findKey(buf, tokens, idx, "NamespaceUri"); ok {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, decodingErrorf("malformed NamespaceUri: %v", err)
		}
		n := int32(v)
		d.NamespaceURI = &n
	}
	if raw, ok := findKey(buf, tokens, idx, "LocalizedText"); ok {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, decodingErrorf("malformed LocalizedText: %v", err)
		}
		n := int32(v)
		d.LocalizedText = &n
	}
	if raw, ok := findKey(buf, tokens, idx, "Locale"); ok {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, decodingErrorf("malformed Locale: %v", err)
		}
		n := int32(v)
		d.Locale = &n
	}
	if raw, ok := findKey(buf, tokens, idx, "AdditionalInfo"); ok {
		s, err := UnescapeString(trimQuotes(raw))
		if err != nil {
			return nil, err
		}
		d.AdditionalInfo = &s
	}
	if statusIdx, ok := findTokenIndex(buf, tokens, idx, "InnerStatusCode"); ok {
		raw := tokenText(buf, tokens[statusIdx])
		var fields map[string]string
		if tokens[statusIdx].Kind == TokenObject {
			var err error
			fields, err = objectFields(buf, tokens, statusIdx)
			if err != nil {
				return nil, err
			}
		}
		s, err := DecodeStatusCode(raw, fields)
		if err != nil {
			return nil, err
		}
		d.InnerStatusCode = &s
	}
	if innerIdx, ok := findTokenIndex(buf, tokens, idx, "InnerDiagnosticInfo"); ok {
		inner, err := decodeDiagnosticInfo(buf, tokens, innerIdx, depth+1, opts)
		if err != nil {
			return nil, err
		}
		d.InnerDiagnosticInfo = inner
	}
	return d, nil
}
