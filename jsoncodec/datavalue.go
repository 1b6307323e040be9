// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"strconv"

	"github.com/opcua-pubsub/codec"
)

// EncodeDataValue writes d as an object with one key per populated field,
// or null if none are set (spec 4.10's "DataValue with no flags encodes
// as null").
func EncodeDataValue(w *Writer, d *ua.DataValue, reversible bool) error {
	if d.IsNull() {
		w.writeString("null")
		return nil
	}
	w.writeByte('{')
	wrote := false
	comma := func() {
		if wrote {
			w.writeByte(',')
		}
		wrote = true
	}
	if d.Value != nil {
		comma()
		w.writeString(`"Value":`)
		if err := EncodeVariant(w, d.Value, reversible); err != nil {
			return err
		}
	}
	if d.Status != nil {
		comma()
		w.writeString(`"Status":`)
		EncodeStatusCode(w, *d.Status, reversible)
	}
	if d.SourceTimestamp != nil {
		comma()
		w.writeString(`"SourceTimestamp":`)
		w.WriteDateTime(*d.SourceTimestamp)
	}
	if d.ServerTimestamp != nil {
		comma()
		w.writeString(`"ServerTimestamp":`)
		w.WriteDateTime(*d.ServerTimestamp)
	}
	if d.SourcePicoseconds != nil {
		comma()
		w.writeString(`"SourcePicoseconds":`)
		w.WriteUint(uint64(*d.SourcePicoseconds))
	}
	if d.ServerPicoseconds != nil {
		comma()
		w.writeString(`"ServerPicoseconds":`)
		w.WriteUint(uint64(*d.ServerPicoseconds))
	}
	w.writeByte('}')
	return nil
}

// DecodeDataValue reads the object EncodeDataValue produces, or null.
func DecodeDataValue(buf []byte, tokens []Token, idx int, opts *ua.CodecOptions) (*ua.DataValue, error) {
	if tokenText(buf, tokens[idx]) == "null" {
		return &ua.DataValue{}, nil
	}
	d := &ua.DataValue{}
	if valIdx, ok := findTokenIndex(buf, tokens, idx, "Value"); ok {
		v, err := DecodeVariant(buf, tokens, valIdx, opts)
		if err != nil {
			return nil, err
		}
		d.Value = v
	}
	if statusRaw, ok := findKey(buf, tokens, idx, "Status"); ok {
		statusIdx, _ := findTokenIndex(buf, tokens, idx, "Status")
		var fields map[string]string
		if tokens[statusIdx].Kind == TokenObject {
			var err error
			fields, err = objectFields(buf, tokens, statusIdx)
			if err != nil {
				return nil, err
			}
		}
		s, err := DecodeStatusCode(statusRaw, fields)
		if err != nil {
			return nil, err
		}
		d.Status = &s
	}
	if raw, ok := findKey(buf, tokens, idx, "SourceTimestamp"); ok {
		t, err := ParseDateTime(raw)
		if err != nil {
			return nil, err
		}
		d.SourceTimestamp = &t
	}
	if raw, ok := findKey(buf, tokens, idx, "ServerTimestamp"); ok {
		t, err := ParseDateTime(raw)
		if err != nil {
			return nil, err
		}
		d.ServerTimestamp = &t
	}
	if raw, ok := findKey(buf, tokens, idx, "SourcePicoseconds"); ok {
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, decodingErrorf("malformed SourcePicoseconds: %v", err)
		}
		p := uint16(v)
		d.SourcePicoseconds = &p
	}
	if raw, ok := findKey(buf, tokens, idx, "ServerPicoseconds"); ok {
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, decodingErrorf("malformed ServerPicoseconds: %v", err)
		}
		p := uint16(v)
		d.ServerPicoseconds = &p
	}
	return d, nil
}
