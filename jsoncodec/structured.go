// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"reflect"

	"github.com/opcua-pubsub/codec"
)

// objectFields walks the immediate children of the object token at idx and
// returns a map from key name to the raw text of its value (quotes
// included for strings, braces/brackets included for containers).
// Duplicate keys are a decoding error (scenario 6).
func objectFields(buf []byte, tokens []Token, idx int) (map[string]string, error) {
	tok := tokens[idx]
	if tok.Kind != TokenObject {
		return nil, decodingErrorf("expected object token")
	}
	fields := make(map[string]string, tok.Size/2)
	i := idx + 1
	for n := 0; n < tok.Size/2; n++ {
		keyTok := tokens[i]
		key := string(buf[keyTok.Start:keyTok.End])
		i++
		valTok := tokens[i]
		if _, dup := fields[key]; dup {
			return nil, ua.ErrDuplicateKey
		}
		var raw string
		switch valTok.Kind {
		case TokenString:
			raw = string(buf[valTok.Start-1 : valTok.End+1])
		default:
			raw = string(buf[valTok.Start:valTok.End])
		}
		fields[key] = raw
		i = skipValue(tokens, i)
	}
	return fields, nil
}

// skipValue returns the token index immediately following the value
// (and, for containers, all of its descendants) starting at idx.
func skipValue(tokens []Token, idx int) int {
	tok := tokens[idx]
	idx++
	switch tok.Kind {
	case TokenObject:
		for n := 0; n < tok.Size/2; n++ {
			idx++ // key
			idx = skipValue(tokens, idx)
		}
	case TokenArray:
		for n := 0; n < tok.Size; n++ {
			idx = skipValue(tokens, idx)
		}
	}
	return idx
}

// findKey looks up name among the object token's immediate keys without
// altering any decode state, letting a Variant/ExtensionObject decoder
// discover a type tag before committing to a body layout.
func findKey(buf []byte, tokens []Token, idx int, name string) (string, bool) {
	fields, err := objectFields(buf, tokens, idx)
	if err != nil {
		return "", false
	}
	v, ok := fields[name]
	return v, ok
}

// EncodeStructured writes value's members as a JSON object in
// TypeDescriptor order, dispatching scalar/array members through the
// builtin JSON encoders (variant.go, statuscode.go, nodeid.go, ...) or
// recursing for a nested structured member.
func EncodeStructured(w *Writer, value interface{}, td *ua.TypeDescriptor, reversible bool) error {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			w.writeString("null")
			return nil
		}
		v = v.Elem()
	}
	w.writeByte('{')
	wrote := false
	comma := func() {
		if wrote {
			w.writeByte(',')
		}
		wrote = true
	}
	for _, m := range td.Members {
		if m.Name == "" {
			continue
		}
		comma()
		w.WriteQuotedString(m.Name)
		w.writeByte(':')
		fv := v.Field(m.FieldIndex)
		if m.IsArray {
			w.writeByte('[')
			for j := 0; j < fv.Len(); j++ {
				if j > 0 {
					w.writeByte(',')
				}
				if err := encodeMember(w, m, fv.Index(j).Interface(), reversible); err != nil {
					return err
				}
			}
			w.writeByte(']')
			continue
		}
		if err := encodeMember(w, m, fv.Interface(), reversible); err != nil {
			return err
		}
	}
	w.writeByte('}')
	return nil
}

func encodeMember(w *Writer, m ua.MemberDescriptor, value interface{}, reversible bool) error {
	if m.Target == ua.TypeIDStructured {
		return EncodeStructured(w, value, m.Nested, reversible)
	}
	return EncodeBuiltinJSON(w, m.Target, value, reversible)
}
