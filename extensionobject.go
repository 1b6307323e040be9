// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// ExtensionObjectEncoding is the byte 0 discriminant following an
// ExtensionObject's TypeId NodeId (spec 4.6).
type ExtensionObjectEncoding byte

const (
	ExtensionObjectNone  ExtensionObjectEncoding = extensionObjectBodyNone
	ExtensionObjectBytes ExtensionObjectEncoding = extensionObjectBodyBytes
	ExtensionObjectXML   ExtensionObjectEncoding = extensionObjectBodyXML
)

// ExtensionObject carries a type-erased payload in one of three forms
// (spec 3): an encoded ByteString body with a TypeId, an encoded XML body
// with a TypeId, or a decoded (typed) value with a TypeDescriptor.
// Body holds the raw already-encoded bytes for the Bytes/XML forms; for
// the decoded form Decoded/DecodedType are set instead and Body is unused
// on encode. Decode always fills Body with the raw body bytes, including
// when it also unwraps them into Decoded (see DecodeExtensionObject).
type ExtensionObject struct {
	TypeID      NodeID
	Encoding    ExtensionObjectEncoding
	Body        []byte
	Decoded     interface{}
	DecodedType *TypeDescriptor
}

// EncodeExtensionObject writes the TypeId, the encoding discriminant, and
// the body. A Decoded value is encoded with discriminant 1 (ByteString):
// the body length is pre-computed with CalcSize and written before the
// body itself is produced through the structured-type jump table (spec
// 4.6). Encoding a Decoded form with a nil DecodedType or a non-numeric
// TypeId is an EncodingError (spec 3's ExtensionObject invariant).
func EncodeExtensionObject(w *Writer, eo *ExtensionObject, opts *CodecOptions) error {
	if eo == nil {
		if err := EncodeNodeID(w, NodeID{}); err != nil {
			return err
		}
		return w.WriteByte(extensionObjectBodyNone)
	}
	if err := EncodeNodeID(w, eo.TypeID); err != nil {
		return err
	}
	if eo.Decoded != nil {
		if eo.DecodedType == nil {
			return ErrNilTypeDescriptor
		}
		if eo.TypeID.Kind != NodeIDNumeric {
			return wrap(EncodingError, "extension object decoded form requires a numeric NodeId type id")
		}
		size := CalcSizeStructured(eo.Decoded, eo.DecodedType)
		if err := w.WriteByte(extensionObjectBodyBytes); err != nil {
			return err
		}
		if err := EncodeInt32(w, int32(size)); err != nil {
			return err
		}
		return EncodeStructured(w, eo.Decoded, eo.DecodedType, 0, opts)
	}
	switch eo.Encoding {
	case ExtensionObjectNone:
		return w.WriteByte(extensionObjectBodyNone)
	case ExtensionObjectBytes, ExtensionObjectXML:
		if err := w.WriteByte(byte(eo.Encoding)); err != nil {
			return err
		}
		return EncodeByteString(w, eo.Body)
	default:
		return wrap(EncodingError, "unknown extension object encoding %d", eo.Encoding)
	}
}

// DecodeExtensionObject reads the TypeId, the discriminant byte, and the
// body. When types is non-nil and the TypeId resolves to a registered
// TypeDescriptor, the ByteString body is additionally unwrapped into
// Decoded/DecodedType through the structured-type jump table; unknown
// TypeIds are left as raw bytes in Body (spec 4.6).
func DecodeExtensionObject(r *Reader, types *TypeTable, opts *CodecOptions) (*ExtensionObject, error) {
	typeID, err := DecodeNodeID(r, opts)
	if err != nil {
		return nil, err
	}
	discriminant, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	eo := &ExtensionObject{TypeID: typeID, Encoding: ExtensionObjectEncoding(discriminant)}
	switch discriminant {
	case extensionObjectBodyNone:
		return eo, nil
	case extensionObjectBodyBytes, extensionObjectBodyXML:
		body, err := DecodeByteString(r, opts)
		if err != nil {
			return nil, err
		}
		eo.Body = body
		if discriminant == extensionObjectBodyBytes && types != nil && typeID.Kind == NodeIDNumeric {
			if td, ok := types.Resolve(typeID); ok {
				inner := NewReader(body)
				decoded, err := DecodeStructured(inner, td, 0, opts)
				if err == nil {
					eo.Decoded = decoded
					eo.DecodedType = td
				}
			}
		}
		return eo, nil
	default:
		return nil, wrap(DecodingError, "unknown extension object encoding byte 0x%02x", discriminant)
	}
}

// CalcSizeExtensionObject mirrors EncodeExtensionObject without writing.
func CalcSizeExtensionObject(eo *ExtensionObject) int {
	if eo == nil {
		return calcSizeNodeID(NodeID{}) + 1
	}
	n := calcSizeNodeID(eo.TypeID) + 1
	if eo.Decoded != nil {
		bodySize := CalcSizeStructured(eo.Decoded, eo.DecodedType)
		return n + 4 + bodySize
	}
	switch eo.Encoding {
	case ExtensionObjectNone:
		return n
	default:
		return n + 4 + len(eo.Body)
	}
}
