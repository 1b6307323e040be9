// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// This file is the binary codec's jump table: one switch on TypeID shared
// by the Variant scalar/array codec (variant.go) and the structured-type
// generic field walker (structured.go), replacing the source language's
// file-scope function-pointer table with a tagged enum plus switch (spec
// 9, "Global codec state"). Each arm type-asserts its interface{} payload
// to the one concrete Go type that TypeID's decode arm below produces, so
// a round trip through encode then decode always type-asserts cleanly.

// encodeBuiltinValue writes value, which must be the concrete Go type
// decodeBuiltinValue(target) returns, dispatching on target through the
// builtin jump table (spec 4.4, 4.5). TypeIDStructured is not handled here
// - it is the generic walker's own recursion, not a jump-table arm.
func encodeBuiltinValue(w *Writer, target TypeID, value interface{}, types *TypeTable, opts *CodecOptions) error {
	switch target {
	case TypeIDBoolean:
		return EncodeBoolean(w, value.(bool))
	case TypeIDSByte:
		return EncodeSByte(w, value.(int8))
	case TypeIDByte:
		return EncodeByte(w, value.(uint8))
	case TypeIDInt16:
		return EncodeInt16(w, value.(int16))
	case TypeIDUInt16:
		return EncodeUInt16(w, value.(uint16))
	case TypeIDInt32:
		return EncodeInt32(w, value.(int32))
	case TypeIDUInt32:
		return EncodeUInt32(w, value.(uint32))
	case TypeIDInt64:
		return EncodeInt64(w, value.(int64))
	case TypeIDUInt64:
		return EncodeUInt64(w, value.(uint64))
	case TypeIDFloat:
		return EncodeFloat(w, value.(float32))
	case TypeIDDouble:
		return EncodeDouble(w, value.(float64))
	case TypeIDString, TypeIDXmlElement:
		return EncodeString(w, value.(*string))
	case TypeIDDateTime:
		return EncodeDateTime(w, value.(int64))
	case TypeIDGuid:
		return EncodeGuid(w, value.(Guid))
	case TypeIDByteString:
		return EncodeByteString(w, value.([]byte))
	case TypeIDNodeID:
		return EncodeNodeID(w, value.(NodeID))
	case TypeIDExpandedNodeID:
		return EncodeExpandedNodeID(w, value.(ExpandedNodeID))
	case TypeIDStatusCode:
		return EncodeStatusCode(w, value.(StatusCode))
	case TypeIDQualifiedName:
		return EncodeQualifiedName(w, value.(QualifiedName))
	case TypeIDLocalizedText:
		return EncodeLocalizedText(w, value.(LocalizedText))
	case TypeIDExtensionObject:
		return EncodeExtensionObject(w, value.(*ExtensionObject), opts)
	case TypeIDDataValue:
		return EncodeDataValue(w, value.(*DataValue), opts)
	case TypeIDVariant:
		return EncodeVariant(w, value.(*Variant), types, opts)
	case TypeIDDiagnosticInfo:
		return EncodeDiagnosticInfo(w, value.(*DiagnosticInfo), 0, opts)
	default:
		return ErrUnknownBuiltinType
	}
}

// decodeBuiltinValue reads one value of builtin type target, dispatching
// through the same jump table as encodeBuiltinValue.
func decodeBuiltinValue(r *Reader, target TypeID, types *TypeTable, opts *CodecOptions) (interface{}, error) {
	switch target {
	case TypeIDBoolean:
		return DecodeBoolean(r)
	case TypeIDSByte:
		return DecodeSByte(r)
	case TypeIDByte:
		return DecodeByte(r)
	case TypeIDInt16:
		return DecodeInt16(r)
	case TypeIDUInt16:
		return DecodeUInt16(r)
	case TypeIDInt32:
		return DecodeInt32(r)
	case TypeIDUInt32:
		return DecodeUInt32(r)
	case TypeIDInt64:
		return DecodeInt64(r)
	case TypeIDUInt64:
		return DecodeUInt64(r)
	case TypeIDFloat:
		return DecodeFloat(r)
	case TypeIDDouble:
		return DecodeDouble(r)
	case TypeIDString, TypeIDXmlElement:
		return DecodeString(r, opts)
	case TypeIDDateTime:
		return DecodeDateTime(r)
	case TypeIDGuid:
		return DecodeGuid(r)
	case TypeIDByteString:
		return DecodeByteString(r, opts)
	case TypeIDNodeID:
		return DecodeNodeID(r, opts)
	case TypeIDExpandedNodeID:
		return DecodeExpandedNodeID(r, opts)
	case TypeIDStatusCode:
		return DecodeStatusCode(r)
	case TypeIDQualifiedName:
		return DecodeQualifiedName(r, opts)
	case TypeIDLocalizedText:
		return DecodeLocalizedText(r, opts)
	case TypeIDExtensionObject:
		return DecodeExtensionObject(r, types, opts)
	case TypeIDDataValue:
		return DecodeDataValue(r, opts)
	case TypeIDVariant:
		return DecodeVariant(r, types, opts)
	case TypeIDDiagnosticInfo:
		return DecodeDiagnosticInfo(r, 0, opts)
	default:
		return nil, ErrUnknownBuiltinType
	}
}

// calcSizeBuiltinValue mirrors encodeBuiltinValue without writing.
func calcSizeBuiltinValue(target TypeID, value interface{}) int {
	switch target {
	case TypeIDBoolean, TypeIDSByte, TypeIDByte:
		return 1
	case TypeIDInt16, TypeIDUInt16:
		return 2
	case TypeIDInt32, TypeIDUInt32, TypeIDFloat:
		return 4
	case TypeIDInt64, TypeIDUInt64, TypeIDDouble, TypeIDDateTime:
		return 8
	case TypeIDString, TypeIDXmlElement:
		return calcSizeString(value.(*string))
	case TypeIDGuid:
		return 16
	case TypeIDByteString:
		return calcSizeByteString(value.([]byte))
	case TypeIDNodeID:
		return calcSizeNodeID(value.(NodeID))
	case TypeIDExpandedNodeID:
		return calcSizeExpandedNodeID(value.(ExpandedNodeID))
	case TypeIDStatusCode:
		return 4
	case TypeIDQualifiedName:
		qn := value.(QualifiedName)
		return 2 + calcSizeString(qn.Name)
	case TypeIDLocalizedText:
		lt := value.(LocalizedText)
		n := 1
		if lt.Locale != nil {
			n += calcSizeString(lt.Locale)
		}
		if lt.Text != nil {
			n += calcSizeString(lt.Text)
		}
		return n
	case TypeIDExtensionObject:
		return CalcSizeExtensionObject(value.(*ExtensionObject))
	case TypeIDDataValue:
		return CalcSizeDataValue(value.(*DataValue))
	case TypeIDVariant:
		return CalcSizeVariant(value.(*Variant))
	case TypeIDDiagnosticInfo:
		return CalcSizeDiagnosticInfo(value.(*DiagnosticInfo))
	default:
		return 0
	}
}
