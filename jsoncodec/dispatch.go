// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"strconv"

	"github.com/opcua-pubsub/codec"
)

// EncodeBuiltinJSON writes value, the concrete Go type DecodeBuiltinJSON
// would produce for target, dispatching through the JSON jump table - the
// JSON sibling of ua's binary dispatch.go.
func EncodeBuiltinJSON(w *Writer, target ua.TypeID, value interface{}, reversible bool) error {
	switch target {
	case ua.TypeIDBoolean:
		if value.(bool) {
			w.writeString("true")
		} else {
			w.writeString("false")
		}
	case ua.TypeIDSByte:
		w.WriteInt(int64(value.(int8)))
	case ua.TypeIDByte:
		w.WriteUint(uint64(value.(uint8)))
	case ua.TypeIDInt16:
		w.WriteInt(int64(value.(int16)))
	case ua.TypeIDUInt16:
		w.WriteUint(uint64(value.(uint16)))
	case ua.TypeIDInt32:
		w.WriteInt(int64(value.(int32)))
	case ua.TypeIDUInt32:
		w.WriteUint(uint64(value.(uint32)))
	case ua.TypeIDInt64:
		w.writeByte('"')
		w.WriteInt(value.(int64))
		w.writeByte('"')
	case ua.TypeIDUInt64:
		w.writeByte('"')
		w.WriteUint(value.(uint64))
		w.writeByte('"')
	case ua.TypeIDFloat:
		w.WriteFloat32(value.(float32))
	case ua.TypeIDDouble:
		w.WriteFloat64(value.(float64))
	case ua.TypeIDString, ua.TypeIDXmlElement:
		s := value.(*string)
		if s == nil {
			w.writeString("null")
		} else {
			w.WriteQuotedString(*s)
		}
	case ua.TypeIDDateTime:
		w.WriteDateTime(value.(int64))
	case ua.TypeIDGuid:
		w.WriteGuid(value.(ua.Guid))
	case ua.TypeIDByteString:
		w.WriteByteString(value.([]byte))
	case ua.TypeIDNodeID:
		EncodeNodeID(w, value.(ua.NodeID))
	case ua.TypeIDExpandedNodeID:
		EncodeNodeID(w, value.(ua.ExpandedNodeID).NodeID)
	case ua.TypeIDStatusCode:
		EncodeStatusCode(w, value.(ua.StatusCode), reversible)
	case ua.TypeIDQualifiedName:
		qn := value.(ua.QualifiedName)
		w.writeString(`{"Name":`)
		if qn.Name != nil {
			w.WriteQuotedString(*qn.Name)
		} else {
			w.writeString("null")
		}
		if qn.NamespaceIndex != 0 {
			w.writeString(`,"Uri":`)
			w.WriteUint(uint64(qn.NamespaceIndex))
		}
		w.writeByte('}')
	case ua.TypeIDLocalizedText:
		lt := value.(ua.LocalizedText)
		if !reversible {
			if lt.Text != nil {
				w.WriteQuotedString(*lt.Text)
			} else {
				w.writeString("null")
			}
			return nil
		}
		w.writeByte('{')
		wrote := false
		if lt.Locale != nil {
			w.writeString(`"Locale":`)
			w.WriteQuotedString(*lt.Locale)
			wrote = true
		}
		if lt.Text != nil {
			if wrote {
				w.writeByte(',')
			}
			w.writeString(`"Text":`)
			w.WriteQuotedString(*lt.Text)
		}
		w.writeByte('}')
	case ua.TypeIDExtensionObject:
		return EncodeExtensionObject(w, value.(*ua.ExtensionObject), reversible)
	case ua.TypeIDDataValue:
		return EncodeDataValue(w, value.(*ua.DataValue), reversible)
	case ua.TypeIDVariant:
		return EncodeVariant(w, value.(*ua.Variant), reversible)
	case ua.TypeIDDiagnosticInfo:
		return EncodeDiagnosticInfo(w, value.(*ua.DiagnosticInfo), reversible)
	default:
		return ua.ErrUnknownBuiltinType
	}
	return nil
}

// DecodeBuiltinJSON reads one value of builtin type target from raw (the
// value token's exact text). tokens/buf/idx are supplied so container
// types (ExtensionObject, DataValue, Variant, DiagnosticInfo) can recurse
// into the token stream for their sub-objects; scalar types only need raw.
func DecodeBuiltinJSON(buf []byte, tokens []Token, idx int, target ua.TypeID, opts *ua.CodecOptions) (interface{}, error) {
	raw := tokenText(buf, tokens[idx])
	switch target {
	case ua.TypeIDBoolean:
		return raw == "true", nil
	case ua.TypeIDSByte:
		v, err := strconv.ParseInt(raw, 10, 8)
		return int8(v), err
	case ua.TypeIDByte:
		v, err := strconv.ParseUint(raw, 10, 8)
		return uint8(v), err
	case ua.TypeIDInt16:
		v, err := strconv.ParseInt(raw, 10, 16)
		return int16(v), err
	case ua.TypeIDUInt16:
		v, err := strconv.ParseUint(raw, 10, 16)
		return uint16(v), err
	case ua.TypeIDInt32:
		v, err := strconv.ParseInt(raw, 10, 32)
		return int32(v), err
	case ua.TypeIDUInt32:
		v, err := strconv.ParseUint(raw, 10, 32)
		return uint32(v), err
	case ua.TypeIDInt64:
		v, err := strconv.ParseInt(trimQuotes(raw), 10, 64)
		return v, err
	case ua.TypeIDUInt64:
		v, err := strconv.ParseUint(trimQuotes(raw), 10, 64)
		return v, err
	case ua.TypeIDFloat:
		v, err := ParseFloat(raw)
		return float32(v), err
	case ua.TypeIDDouble:
		return ParseFloat(raw)
	case ua.TypeIDString, ua.TypeIDXmlElement:
		if raw == "null" {
			return (*string)(nil), nil
		}
		s, err := UnescapeString(trimQuotes(raw))
		if err != nil {
			return nil, err
		}
		return &s, nil
	case ua.TypeIDDateTime:
		return ParseDateTime(raw)
	case ua.TypeIDGuid:
		return ParseGuid(raw)
	case ua.TypeIDByteString:
		return ParseByteString(raw)
	case ua.TypeIDNodeID:
		fields, err := objectFields(buf, tokens, idx)
		if err != nil {
			return nil, err
		}
		return DecodeNodeID(fields)
	case ua.TypeIDExpandedNodeID:
		fields, err := objectFields(buf, tokens, idx)
		if err != nil {
			return nil, err
		}
		id, err := DecodeNodeID(fields)
		if err != nil {
			return nil, err
		}
		return ua.ExpandedNodeID{NodeID: id}, nil
	case ua.TypeIDStatusCode:
		var fields map[string]string
		if tokens[idx].Kind == TokenObject {
			var err error
			fields, err = objectFields(buf, tokens, idx)
			if err != nil {
				return nil, err
			}
		}
		return DecodeStatusCode(raw, fields)
	case ua.TypeIDQualifiedName:
		fields, err := objectFields(buf, tokens, idx)
		if err != nil {
			return nil, err
		}
		qn := ua.QualifiedName{}
		if nameRaw, ok := fields["Name"]; ok && nameRaw != "null" {
			s, err := UnescapeString(trimQuotes(nameRaw))
			if err != nil {
				return nil, err
			}
			qn.Name = &s
		}
		if uriRaw, ok := fields["Uri"]; ok {
			n, err := strconv.ParseUint(uriRaw, 10, 16)
			if err != nil {
				return nil, decodingErrorf("malformed QualifiedName Uri: %v", err)
			}
			qn.NamespaceIndex = uint16(n)
		}
		return qn, nil
	case ua.TypeIDLocalizedText:
		if tokens[idx].Kind != TokenObject {
			if raw == "null" {
				return ua.LocalizedText{}, nil
			}
			s, err := UnescapeString(trimQuotes(raw))
			if err != nil {
				return nil, err
			}
			return ua.LocalizedText{Text: &s}, nil
		}
		fields, err := objectFields(buf, tokens, idx)
		if err != nil {
			return nil, err
		}
		lt := ua.LocalizedText{}
		if localeRaw, ok := fields["Locale"]; ok {
			s, err := UnescapeString(trimQuotes(localeRaw))
			if err != nil {
				return nil, err
			}
			lt.Locale = &s
		}
		if textRaw, ok := fields["Text"]; ok {
			s, err := UnescapeString(trimQuotes(textRaw))
			if err != nil {
				return nil, err
			}
			lt.Text = &s
		}
		return lt, nil
	case ua.TypeIDExtensionObject:
		return DecodeExtensionObject(buf, tokens, idx)
	case ua.TypeIDDataValue:
		return DecodeDataValue(buf, tokens, idx, opts)
	case ua.TypeIDVariant:
		return DecodeVariant(buf, tokens, idx, opts)
	case ua.TypeIDDiagnosticInfo:
		return DecodeDiagnosticInfo(buf, tokens, idx, opts)
	default:
		return nil, ua.ErrUnknownBuiltinType
	}
}

func tokenText(buf []byte, t Token) string {
	if t.Kind == TokenString {
		return string(buf[t.Start-1 : t.End+1])
	}
	return string(buf[t.Start:t.End])
}
