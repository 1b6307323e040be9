// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"strconv"

	"github.com/opcua-pubsub/codec"
)

// EncodeExtensionObject writes eo as
// {"TypeId":<NodeId>,"Encoding":<1|2>,"Body":<value>}, Encoding and Body
// omitted for the default (no body) case.
func EncodeExtensionObject(w *Writer, eo *ua.ExtensionObject, reversible bool) error {
	if eo == nil {
		w.writeString("null")
		return nil
	}
	w.writeString(`{"TypeId":`)
	EncodeNodeID(w, eo.TypeID)
	switch eo.Encoding {
	case ua.ExtensionObjectBytes:
		w.writeString(`,"Encoding":1,"Body":`)
		w.WriteByteString(eo.Body)
	case ua.ExtensionObjectXML:
		w.writeString(`,"Encoding":2,"Body":`)
		w.WriteQuotedString(string(eo.Body))
	}
	w.writeByte('}')
	return nil
}

// DecodeExtensionObject reads the object EncodeExtensionObject produces.
// findKey discovers the Encoding discriminant before the Body field is
// committed to a ByteString or XML interpretation, the JSON codec's
// equivalent of the binary codec reading the 1-byte discriminant first.
func DecodeExtensionObject(buf []byte, tokens []Token, idx int) (*ua.ExtensionObject, error) {
	if tokenText(buf, tokens[idx]) == "null" {
		return &ua.ExtensionObject{}, nil
	}
	typeIDIdx, ok := findTokenIndex(buf, tokens, idx, "TypeId")
	if !ok {
		return nil, decodingErrorf("ExtensionObject missing TypeId field")
	}
	typeFields, err := objectFields(buf, tokens, typeIDIdx)
	if err != nil {
		return nil, err
	}
	typeID, err := DecodeNodeID(typeFields)
	if err != nil {
		return nil, err
	}
	eo := &ua.ExtensionObject{TypeID: typeID}
	encRaw, hasEnc := findKey(buf, tokens, idx, "Encoding")
	if !hasEnc {
		return eo, nil
	}
	enc, err := strconv.Atoi(encRaw)
	if err != nil {
		return nil, decodingErrorf("malformed ExtensionObject Encoding: %v", err)
	}
	bodyIdx, ok := findTokenIndex(buf, tokens, idx, "Body")
	if !ok {
		return nil, decodingErrorf("ExtensionObject missing Body field for Encoding %d", enc)
	}
	bodyRaw := tokenText(buf, tokens[bodyIdx])
	switch enc {
	case 1:
		body, err := ParseByteString(bodyRaw)
		if err != nil {
			return nil, err
		}
		eo.Encoding = ua.ExtensionObjectBytes
		eo.Body = body
	case 2:
		s, err := UnescapeString(trimQuotes(bodyRaw))
		if err != nil {
			return nil, err
		}
		eo.Encoding = ua.ExtensionObjectXML
		eo.Body = []byte(s)
	default:
		return nil, decodingErrorf("unknown ExtensionObject Encoding %d", enc)
	}
	return eo, nil
}
