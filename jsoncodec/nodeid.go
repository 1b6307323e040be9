// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"strconv"

	"github.com/opcua-pubsub/codec"
)

// nodeIDType values for the JSON "IdType" discriminant field. Numeric is
// the implicit default and its field is omitted on encode.
const (
	nodeIDTypeNumeric    = 0
	nodeIDTypeString     = 1
	nodeIDTypeGUID       = 2
	nodeIDTypeByteString = 3
)

// EncodeNodeID writes id as `{"IdType":n?,"Namespace":ns?,"Id":value}`:
// IdType and Namespace are each omitted when they hold their default
// value (Numeric, 0), matching scenario 3 exactly for a namespace-0
// string id.
func EncodeNodeID(w *Writer, id ua.NodeID) {
	w.writeByte('{')
	first := true
	writeComma := func() {
		if !first {
			w.writeByte(',')
		}
		first = false
	}
	switch id.Kind {
	case ua.NodeIDString:
		writeComma()
		w.writeString(`"IdType":1`)
	case ua.NodeIDGUID:
		writeComma()
		w.writeString(`"IdType":2`)
	case ua.NodeIDByteString:
		writeComma()
		w.writeString(`"IdType":3`)
	}
	if id.Namespace != 0 {
		writeComma()
		w.writeString(`"Namespace":`)
		w.WriteUint(uint64(id.Namespace))
	}
	writeComma()
	w.writeString(`"Id":`)
	switch id.Kind {
	case ua.NodeIDNumeric:
		w.WriteUint(uint64(id.Numeric))
	case ua.NodeIDString:
		w.WriteQuotedString(id.StringID)
	case ua.NodeIDGUID:
		w.WriteGuid(id.GUIDID)
	case ua.NodeIDByteString:
		w.WriteByteString(id.ByteStringID)
	}
	w.writeByte('}')
}

// DecodeNodeID reads a NodeId object previously built by a field resolver
// pass (see structured.go's objectFields) mapping key name to raw token
// text.
func DecodeNodeID(fields map[string]string) (ua.NodeID, error) {
	idType := nodeIDTypeNumeric
	if raw, ok := fields["IdType"]; ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return ua.NodeID{}, decodingErrorf("malformed IdType: %v", err)
		}
		idType = v
	}
	var ns uint64
	if raw, ok := fields["Namespace"]; ok {
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return ua.NodeID{}, decodingErrorf("malformed Namespace: %v", err)
		}
		ns = v
	}
	idRaw, ok := fields["Id"]
	if !ok {
		return ua.NodeID{}, decodingErrorf("NodeId object missing Id field")
	}
	switch idType {
	case nodeIDTypeNumeric:
		v, err := strconv.ParseUint(idRaw, 10, 32)
		if err != nil {
			return ua.NodeID{}, decodingErrorf("malformed numeric Id: %v", err)
		}
		return ua.NewNumericNodeID(uint16(ns), uint32(v)), nil
	case nodeIDTypeString:
		s, err := UnescapeString(trimQuotes(idRaw))
		if err != nil {
			return ua.NodeID{}, err
		}
		return ua.NewStringNodeID(uint16(ns), s), nil
	case nodeIDTypeGUID:
		g, err := ParseGuid(idRaw)
		if err != nil {
			return ua.NodeID{}, err
		}
		return ua.NodeID{Namespace: uint16(ns), Kind: ua.NodeIDGUID, GUIDID: g}, nil
	case nodeIDTypeByteString:
		b, err := ParseByteString(idRaw)
		if err != nil {
			return ua.NodeID{}, err
		}
		return ua.NodeID{Namespace: uint16(ns), Kind: ua.NodeIDByteString, ByteStringID: b}, nil
	default:
		return ua.NodeID{}, decodingErrorf("unknown IdType %d", idType)
	}
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
