// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

import "github.com/opcua-pubsub/codec"

// CalcSizeVariant returns the exact length of v's JSON encoding by running
// the real encoder into a scratch Writer. JSON's variable-width number
// formatting and string escaping make an estimate-without-encoding
// approach impractical, unlike the binary codec's arithmetic size
// calculators (size.go), so every CalcSize* here measures the real
// output instead of approximating it.
func CalcSizeVariant(v *ua.Variant, reversible bool) int {
	w := &Writer{}
	if err := EncodeVariant(w, v, reversible); err != nil {
		return 0
	}
	return len(w.Bytes())
}

// CalcSizeDataValue returns the exact length of d's JSON encoding.
func CalcSizeDataValue(d *ua.DataValue, reversible bool) int {
	w := &Writer{}
	if err := EncodeDataValue(w, d, reversible); err != nil {
		return 0
	}
	return len(w.Bytes())
}

// CalcSizeExtensionObject returns the exact length of eo's JSON encoding.
func CalcSizeExtensionObject(eo *ua.ExtensionObject, reversible bool) int {
	w := &Writer{}
	if err := EncodeExtensionObject(w, eo, reversible); err != nil {
		return 0
	}
	return len(w.Bytes())
}

// CalcSizeDiagnosticInfo returns the exact length of d's JSON encoding.
func CalcSizeDiagnosticInfo(d *ua.DiagnosticInfo, reversible bool) int {
	w := &Writer{}
	if err := EncodeDiagnosticInfo(w, d, reversible); err != nil {
		return 0
	}
	return len(w.Bytes())
}

// CalcSizeStructured returns the exact length of value's JSON encoding
// against td.
func CalcSizeStructured(value interface{}, td *ua.TypeDescriptor, reversible bool) int {
	w := &Writer{}
	if err := EncodeStructured(w, value, td, reversible); err != nil {
		return 0
	}
	return len(w.Bytes())
}
