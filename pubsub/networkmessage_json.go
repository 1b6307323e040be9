// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package pubsub

import (
	"strconv"

	"github.com/opcua-pubsub/codec"
	"github.com/opcua-pubsub/codec/jsoncodec"
)

// NetworkMessageType selects the JSON envelope's MessageType discriminant.
// "ua-metadata" carries a DataSetMetaData body, which this codec does not
// implement (see DecodeNetworkMessageJSON).
type NetworkMessageType string

const (
	NetworkMessageTypeData     NetworkMessageType = "ua-data"
	NetworkMessageTypeMetaData NetworkMessageType = "ua-metadata"
)

// EncodeNetworkMessageJSON writes m as
// {"MessageId":"<guid>","MessageType":"ua-data","PublisherId":...?,
// "DataSetClassId":"<guid>"?,"Messages":[DataSetMessage,...]}, the JSON
// sibling of EncodeNetworkMessage (spec 4.12).
func EncodeNetworkMessageJSON(w *jsoncodec.Writer, m *NetworkMessage, reversible bool) error {
	w.WriteRaw(`{"MessageId":`)
	w.WriteGuid(m.MessageID)
	w.WriteRaw(`,"MessageType":"ua-data"`)
	if m.PublisherID != nil {
		w.WriteRaw(`,"PublisherId":`)
		if err := encodePublisherIDJSON(w, m.PublisherID); err != nil {
			return err
		}
	}
	if m.DataSetClassID != nil {
		w.WriteRaw(`,"DataSetClassId":`)
		w.WriteGuid(*m.DataSetClassID)
	}
	w.WriteRaw(`,"Messages":[`)
	for i, dsm := range m.Messages {
		if i > 0 {
			w.WriteRaw(",")
		}
		if err := EncodeDataSetMessageJSON(w, dsm, reversible); err != nil {
			return err
		}
	}
	w.WriteRaw(`]}`)
	return nil
}

func encodePublisherIDJSON(w *jsoncodec.Writer, p *PublisherID) error {
	switch p.Type {
	case ua.PublisherIDTypeByte:
		w.WriteUint(uint64(p.Byte))
	case ua.PublisherIDTypeUInt16:
		w.WriteUint(uint64(p.U16))
	case ua.PublisherIDTypeUInt32:
		w.WriteUint(uint64(p.U32))
	case ua.PublisherIDTypeUInt64:
		w.WriteQuotedString(strconv.FormatUint(p.U64, 10))
	case ua.PublisherIDTypeString:
		w.WriteQuotedString(p.Str)
	default:
		return ua.ErrUnknownBuiltinType
	}
	return nil
}

// DecodeNetworkMessageJSON reads the object EncodeNetworkMessageJSON
// produces. Each Messages entry decodes with typ/enc supplied by the
// caller's dataset metadata, since the reversible DataSetMessage JSON form
// carries neither its own message type nor field encoding tag. A
// "ua-metadata" MessageType is recognized only at the envelope level: its
// Messages body is DataSetMetaData, which this codec does not decode.
func DecodeNetworkMessageJSON(buf []byte, tokens []jsoncodec.Token, idx int, typ DataSetMessageType, enc FieldEncoding, opts *ua.CodecOptions) (*NetworkMessage, error) {
	fields, err := jsoncodec.ObjectFields(buf, tokens, idx)
	if err != nil {
		return nil, err
	}
	msgType, ok := fields["MessageType"]
	if !ok {
		return nil, jsoncodec.DecodingErrorf("NetworkMessage missing MessageType field")
	}
	if NetworkMessageType(jsoncodec.TrimQuotes(msgType)) == NetworkMessageTypeMetaData {
		return nil, ua.ErrNotImplemented
	}
	idRaw, ok := fields["MessageId"]
	if !ok {
		return nil, jsoncodec.DecodingErrorf("NetworkMessage missing MessageId field")
	}
	guid, err := jsoncodec.ParseGuid(idRaw)
	if err != nil {
		return nil, err
	}
	m := &NetworkMessage{MessageID: guid, MessageType: ua.NetworkMessageTypeDataSet}
	if raw, ok := fields["PublisherId"]; ok {
		p, err := decodePublisherIDJSON(raw)
		if err != nil {
			return nil, err
		}
		m.PublisherID = p
	}
	if raw, ok := fields["DataSetClassId"]; ok {
		g, err := jsoncodec.ParseGuid(raw)
		if err != nil {
			return nil, err
		}
		m.DataSetClassID = &g
	}
	msgsIdx, ok := jsoncodec.FindTokenIndex(buf, tokens, idx, "Messages")
	if !ok {
		return m, nil
	}
	msgsTok := tokens[msgsIdx]
	if msgsTok.Kind != jsoncodec.TokenArray {
		return nil, jsoncodec.DecodingErrorf("NetworkMessage Messages field must be an array")
	}
	out := make([]*DataSetMessage, 0, msgsTok.Size)
	elemIdx := msgsIdx + 1
	for i := 0; i < msgsTok.Size; i++ {
		dsm, err := DecodeDataSetMessageJSON(buf, tokens, elemIdx, typ, enc, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, dsm)
		elemIdx = jsoncodec.SkipValue(tokens, elemIdx)
	}
	m.Messages = out
	return m, nil
}

// decodePublisherIDJSON infers the PublisherID's wire kind from the JSON
// value's own shape: a quoted decimal string decodes as UInt64 (the only
// scalar kind requiring JSON's string-for-64-bit-integer convention), a
// bare number as UInt32, and a quoted non-numeric string as String.
func decodePublisherIDJSON(raw string) (*PublisherID, error) {
	if len(raw) > 0 && raw[0] == '"' {
		unquoted := jsoncodec.TrimQuotes(raw)
		if v, err := strconv.ParseUint(unquoted, 10, 64); err == nil {
			return &PublisherID{Type: ua.PublisherIDTypeUInt64, U64: v}, nil
		}
		return &PublisherID{Type: ua.PublisherIDTypeString, Str: unquoted}, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, jsoncodec.DecodingErrorf("malformed PublisherId: %v", err)
	}
	return &PublisherID{Type: ua.PublisherIDTypeUInt32, U32: uint32(v)}, nil
}
