// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// Variant is a self-describing value: a builtin type tag, either a scalar
// or an array of that type, and optional array dimensions (spec 3).
//
// Scalar/Array elements must be the concrete Go type decodeBuiltinValue
// would produce for Type (see dispatch.go): bool for Boolean, int8 for
// SByte, ..., *string for String/XmlElement, []byte for ByteString,
// NodeID, ExpandedNodeID, StatusCode, QualifiedName, LocalizedText,
// *ExtensionObject, *DataValue, *Variant, *DiagnosticInfo.
//
// A Variant whose logical content is a non-builtin structured type is
// represented with Type == TypeIDExtensionObject and a Scalar/Array
// element of *ExtensionObject carrying Decoded/DecodedType (spec 4.5's
// "unwrap rule"): encoding such a Variant automatically emits the wrapped
// ExtensionObject body through the structured-type jump table, and
// decoding automatically attempts the same unwrap when a TypeTable is
// supplied, leaving eo.Decoded nil for TypeIds the table does not know.
type Variant struct {
	Type       TypeID
	Scalar     interface{}
	Array      []interface{}
	Dimensions []int32
}

// IsArray reports whether v holds an array (Array != nil), matching the
// invariant "array_length > 0 iff data points to an array" by using Go's
// nil-vs-non-nil slice distinction; a present-but-empty array is Array !=
// nil with len(Array) == 0.
func (v *Variant) IsArray() bool {
	return v != nil && v.Array != nil
}

// validate checks the Variant invariants from spec 3: dimensions, if
// present, must multiply out to the array length, and a Variant typed as
// Variant is only legal in array form.
func (v *Variant) validate() error {
	if v.Type == TypeIDVariant && !v.IsArray() {
		return ErrVariantNestedScalar
	}
	if v.Dimensions != nil {
		product := int32(1)
		for _, d := range v.Dimensions {
			product *= d
		}
		if int(product) != len(v.Array) {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// EncodeVariant writes the 1-byte bitfield (bits 0-5 builtin type index,
// bit 6 has-dimensions, bit 7 is-array) followed by the value(s) and,
// if present, the dimensions as an Int32 array (spec 4.5).
func EncodeVariant(w *Writer, v *Variant, types *TypeTable, opts *CodecOptions) error {
	if v == nil || v.Type == 0 {
		return w.WriteByte(0)
	}
	if err := v.validate(); err != nil {
		return err
	}
	encByte := byte(v.Type) & variantTypeMask
	if v.IsArray() {
		encByte |= variantArrayFlag
	}
	if v.Dimensions != nil {
		encByte |= variantDimensionFlag
	}
	if err := w.WriteByte(encByte); err != nil {
		return err
	}
	if !v.IsArray() {
		return encodeBuiltinValue(w, v.Type, v.Scalar, types, opts)
	}
	if err := EncodeInt32(w, int32(len(v.Array))); err != nil {
		return err
	}
	for _, elem := range v.Array {
		if err := encodeBuiltinValue(w, v.Type, elem, types, opts); err != nil {
			return err
		}
	}
	if v.Dimensions != nil {
		if err := EncodeInt32(w, int32(len(v.Dimensions))); err != nil {
			return err
		}
		for _, d := range v.Dimensions {
			if err := EncodeInt32(w, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeVariant reads the 1-byte bitfield and the value(s)/dimensions it
// describes (spec 4.5). types, if non-nil, drives the ExtensionObject
// unwrap rule for non-builtin contained types.
func DecodeVariant(r *Reader, types *TypeTable, opts *CodecOptions) (*Variant, error) {
	o := opts.resolved()
	encByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if encByte == 0 {
		return &Variant{}, nil
	}
	typ := TypeID(encByte & variantTypeMask)
	if !typ.IsBuiltin() {
		return nil, ErrUnknownBuiltinType
	}
	isArray := encByte&variantArrayFlag != 0
	hasDims := encByte&variantDimensionFlag != 0

	v := &Variant{Type: typ}
	if !isArray {
		val, err := decodeBuiltinValue(r, typ, types, opts)
		if err != nil {
			return nil, err
		}
		v.Scalar = val
		return v, nil
	}

	length, err := decodeLength(r, o.MaxArrayLength)
	if err != nil {
		return nil, err
	}
	if length == -1 {
		v.Array = nil
	} else {
		arr := make([]interface{}, length)
		for i := range arr {
			val, err := decodeBuiltinValue(r, typ, types, opts)
			if err != nil {
				return nil, err
			}
			arr[i] = val
		}
		v.Array = arr
		if v.Array == nil {
			v.Array = []interface{}{}
		}
	}
	if hasDims {
		dimCount, err := decodeLength(r, o.MaxArrayLength)
		if err != nil {
			return nil, err
		}
		if dimCount >= 0 {
			dims := make([]int32, dimCount)
			for i := range dims {
				d, err := DecodeInt32(r)
				if err != nil {
					return nil, err
				}
				dims[i] = d
			}
			v.Dimensions = dims
			if err := v.validate(); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// CalcSizeVariant mirrors EncodeVariant without writing.
func CalcSizeVariant(v *Variant) int {
	if v == nil || v.Type == 0 {
		return 1
	}
	n := 1
	if !v.IsArray() {
		return n + calcSizeBuiltinValue(v.Type, v.Scalar)
	}
	n += 4
	for _, elem := range v.Array {
		n += calcSizeBuiltinValue(v.Type, elem)
	}
	if v.Dimensions != nil {
		n += 4 + 4*len(v.Dimensions)
	}
	return n
}
