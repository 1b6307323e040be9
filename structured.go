// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import "reflect"

// EncodeStructured writes value's members in TypeDescriptor order, each
// dispatched through the builtin jump table (dispatch.go) or, for a
// TypeIDStructured member, recursed into through EncodeStructured itself
// (spec 4.4's generic field walker, the Go replacement for a generated
// per-type encode function). value may be a pointer to td.GoType or a
// td.GoType value directly.
func EncodeStructured(w *Writer, value interface{}, td *TypeDescriptor, depth int, opts *CodecOptions) error {
	o := opts.resolved()
	if depth > o.MaxRecursionDepth {
		return ErrRecursionLimit
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return wrap(EncodingError, "nil value for structured type %s", td.Name)
		}
		v = v.Elem()
	}
	for _, m := range td.Members {
		fv := v.Field(m.FieldIndex)
		if m.IsArray {
			length := fv.Len()
			if fv.IsNil() {
				length = -1
			}
			if err := EncodeInt32(w, int32(length)); err != nil {
				return err
			}
			for i := 0; i < fv.Len(); i++ {
				if err := encodeStructuredMember(w, m, fv.Index(i).Interface(), depth, opts); err != nil {
					return err
				}
			}
			continue
		}
		if err := encodeStructuredMember(w, m, fv.Interface(), depth, opts); err != nil {
			return err
		}
	}
	return nil
}

func encodeStructuredMember(w *Writer, m MemberDescriptor, value interface{}, depth int, opts *CodecOptions) error {
	if m.Target == TypeIDStructured {
		if m.Nested == nil {
			return wrap(EncodingError, "member %s has no nested type descriptor", m.Name)
		}
		return EncodeStructured(w, value, m.Nested, depth+1, opts)
	}
	return encodeBuiltinValue(w, m.Target, value, nil, opts)
}

// DecodeStructured allocates a new td.GoType value, fills its members in
// TypeDescriptor order, and returns a pointer to it as interface{} (spec
// 4.4). The caller type-asserts the result to *td.GoType's underlying Go
// type, which is how TypeTable-driven ExtensionObject unwrap (spec 4.6)
// hands callers a concretely typed value without generated code.
func DecodeStructured(r *Reader, td *TypeDescriptor, depth int, opts *CodecOptions) (interface{}, error) {
	o := opts.resolved()
	if depth > o.MaxRecursionDepth {
		return nil, ErrRecursionLimit
	}
	ptr := reflect.New(td.GoType)
	v := ptr.Elem()
	for _, m := range td.Members {
		fv := v.Field(m.FieldIndex)
		if m.IsArray {
			length, err := decodeLength(r, o.MaxArrayLength)
			if err != nil {
				return nil, err
			}
			if length < 0 {
				continue
			}
			elemType := fv.Type().Elem()
			slice := reflect.MakeSlice(fv.Type(), int(length), int(length))
			for i := 0; i < int(length); i++ {
				elem, err := decodeStructuredMember(r, m, elemType, depth, opts)
				if err != nil {
					return nil, err
				}
				slice.Index(i).Set(reflect.ValueOf(elem).Convert(elemType))
			}
			fv.Set(slice)
			continue
		}
		elem, err := decodeStructuredMember(r, m, fv.Type(), depth, opts)
		if err != nil {
			return nil, err
		}
		fv.Set(reflect.ValueOf(elem).Convert(fv.Type()))
	}
	return ptr.Interface(), nil
}

func decodeStructuredMember(r *Reader, m MemberDescriptor, fieldType reflect.Type, depth int, opts *CodecOptions) (interface{}, error) {
	if m.Target == TypeIDStructured {
		if m.Nested == nil {
			return nil, wrap(DecodingError, "member %s has no nested type descriptor", m.Name)
		}
		return DecodeStructured(r, m.Nested, depth+1, opts)
	}
	return decodeBuiltinValue(r, m.Target, nil, opts)
}

// CalcSizeStructured mirrors EncodeStructured without writing.
func CalcSizeStructured(value interface{}, td *TypeDescriptor) int {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return 0
		}
		v = v.Elem()
	}
	n := 0
	for _, m := range td.Members {
		fv := v.Field(m.FieldIndex)
		if m.IsArray {
			n += 4
			for i := 0; i < fv.Len(); i++ {
				n += calcSizeStructuredMember(m, fv.Index(i).Interface())
			}
			continue
		}
		n += calcSizeStructuredMember(m, fv.Interface())
	}
	return n
}

func calcSizeStructuredMember(m MemberDescriptor, value interface{}) int {
	if m.Target == TypeIDStructured {
		if m.Nested == nil {
			return 0
		}
		return CalcSizeStructured(value, m.Nested)
	}
	return calcSizeBuiltinValue(m.Target, value)
}
