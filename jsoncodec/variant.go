// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"strconv"

	"github.com/opcua-pubsub/codec"
)

// EncodeVariant writes v in reversible ({"Type":n,"Body":...,"Dimension":
// [...]?}) or non-reversible ({"Body":...} for scalar/1-D, or a bare
// dimension-shaped nested array for a multi-dimensional array) form (spec
// 4.11, scenarios 4 and 7).
func EncodeVariant(w *Writer, v *ua.Variant, reversible bool) error {
	if v == nil || v.Type == 0 {
		w.writeString("null")
		return nil
	}
	if !reversible && len(v.Dimensions) > 1 {
		return encodeVariantMatrix(w, v)
	}
	if reversible {
		w.writeString(`{"Type":`)
		w.WriteUint(uint64(v.Type))
		w.writeString(`,"Body":`)
	} else {
		w.writeString(`{"Body":`)
	}
	if err := encodeVariantBody(w, v, reversible); err != nil {
		return err
	}
	if reversible && v.Dimensions != nil {
		w.writeString(`,"Dimension":[`)
		for i, d := range v.Dimensions {
			if i > 0 {
				w.writeByte(',')
			}
			w.WriteInt(int64(d))
		}
		w.writeByte(']')
	}
	w.writeByte('}')
	return nil
}

func encodeVariantBody(w *Writer, v *ua.Variant, reversible bool) error {
	if !v.IsArray() {
		return EncodeBuiltinJSON(w, v.Type, v.Scalar, reversible)
	}
	w.writeByte('[')
	for i, elem := range v.Array {
		if i > 0 {
			w.writeByte(',')
		}
		if err := EncodeBuiltinJSON(w, v.Type, elem, reversible); err != nil {
			return err
		}
	}
	w.writeByte(']')
	return nil
}

// encodeVariantMatrix writes a non-reversible multi-dimensional array
// Body as nested JSON arrays shaped row-major by v.Dimensions, with no
// surrounding {"Body":...} envelope - the innermost dimension holds
// scalar elements (scenario 7).
func encodeVariantMatrix(w *Writer, v *ua.Variant) error {
	_, err := writeMatrixDim(w, v, v.Dimensions, 0, 0)
	return err
}

func writeMatrixDim(w *Writer, v *ua.Variant, dims []int32, dim int, offset int) (int, error) {
	w.writeByte('[')
	n := int(dims[dim])
	for i := 0; i < n; i++ {
		if i > 0 {
			w.writeByte(',')
		}
		if dim == len(dims)-1 {
			if err := EncodeBuiltinJSON(w, v.Type, v.Array[offset], false); err != nil {
				return offset, err
			}
			offset++
		} else {
			var err error
			offset, err = writeMatrixDim(w, v, dims, dim+1, offset)
			if err != nil {
				return offset, err
			}
		}
	}
	w.writeByte(']')
	return offset, nil
}

// DecodeVariant reads a reversible Variant object: {"Type":n,"Body":...,
// "Dimension":[...]?}. Non-reversible Variant decode is not implemented,
// since the non-reversible form omits the type tag a generic decoder
// needs to know what Body means (the caller's dataset metadata would
// supply it, which is out of the codec's scope).
func DecodeVariant(buf []byte, tokens []Token, idx int, opts *ua.CodecOptions) (*ua.Variant, error) {
	if tokens[idx].Kind != TokenObject {
		if tokenText(buf, tokens[idx]) == "null" {
			return &ua.Variant{}, nil
		}
		return nil, decodingErrorf("expected Variant object")
	}
	fields, err := objectFields(buf, tokens, idx)
	if err != nil {
		return nil, err
	}
	typeRaw, ok := fields["Type"]
	if !ok {
		return nil, decodingErrorf("Variant object missing Type field")
	}
	typeNum, err := strconv.Atoi(typeRaw)
	if err != nil {
		return nil, decodingErrorf("malformed Variant Type: %v", err)
	}
	typ := ua.TypeID(typeNum)
	if !typ.IsBuiltin() {
		return nil, ua.ErrUnknownBuiltinType
	}
	bodyIdx, ok := findTokenIndex(buf, tokens, idx, "Body")
	if !ok {
		return nil, decodingErrorf("Variant object missing Body field")
	}
	v := &ua.Variant{Type: typ}
	if tokens[bodyIdx].Kind == TokenArray {
		bodyTok := tokens[bodyIdx]
		arr := make([]interface{}, bodyTok.Size)
		elemIdx := bodyIdx + 1
		for i := 0; i < bodyTok.Size; i++ {
			val, err := DecodeBuiltinJSON(buf, tokens, elemIdx, typ, opts)
			if err != nil {
				return nil, err
			}
			arr[i] = val
			elemIdx = skipValue(tokens, elemIdx)
		}
		v.Array = arr
	} else {
		val, err := DecodeBuiltinJSON(buf, tokens, bodyIdx, typ, opts)
		if err != nil {
			return nil, err
		}
		v.Scalar = val
	}
	if _, ok := fields["Dimension"]; ok {
		dimIdx, _ := findTokenIndex(buf, tokens, idx, "Dimension")
		dimTok := tokens[dimIdx]
		dims := make([]int32, dimTok.Size)
		di := dimIdx + 1
		for i := range dims {
			n, err := strconv.Atoi(tokenText(buf, tokens[di]))
			if err != nil {
				return nil, decodingErrorf("malformed Dimension entry: %v", err)
			}
			dims[i] = int32(n)
			di = skipValue(tokens, di)
		}
		v.Dimensions = dims
	}
	return v, nil
}

// findTokenIndex returns the token index of the value bound to name in
// the object at objIdx.
func findTokenIndex(buf []byte, tokens []Token, objIdx int, name string) (int, bool) {
	tok := tokens[objIdx]
	i := objIdx + 1
	for n := 0; n < tok.Size/2; n++ {
		keyTok := tokens[i]
		i++
		if string(buf[keyTok.Start:keyTok.End]) == name {
			return i, true
		}
		i = skipValue(tokens, i)
	}
	return 0, false
}
