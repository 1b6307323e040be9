// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// DiagnosticInfo field-presence mask bits (spec 4.7).
const (
	diagSymbolicIDFlag       byte = 0x01
	diagNamespaceURIFlag     byte = 0x02
	diagLocalizedTextFlag    byte = 0x04
	diagLocaleFlag           byte = 0x08
	diagAdditionalInfoFlag   byte = 0x10
	diagInnerStatusCodeFlag  byte = 0x20
	diagInnerDiagnosticFlag  byte = 0x40
)

// DiagnosticInfo is a recursive structure carrying string-table indices
// for symbolic id, namespace URI, localized text, and locale, plus
// additional free text, an inner status code, and a self-referencing inner
// diagnostic info (spec 3). A DiagnosticInfo with no field set is the
// "null" value (spec 4.10).
type DiagnosticInfo struct {
	SymbolicID          *int32
	NamespaceURI        *int32
	LocalizedText       *int32
	Locale              *int32
	AdditionalInfo      *string
	InnerStatusCode     *StatusCode
	InnerDiagnosticInfo *DiagnosticInfo
}

// IsNull reports whether no field is set, the spec 4.10 "encodes as null"
// condition shared by binary's zero-mask and JSON's null body.
func (d *DiagnosticInfo) IsNull() bool {
	return d == nil || (d.SymbolicID == nil && d.NamespaceURI == nil &&
		d.LocalizedText == nil && d.Locale == nil && d.AdditionalInfo == nil &&
		d.InnerStatusCode == nil && d.InnerDiagnosticInfo == nil)
}

func (d *DiagnosticInfo) mask() byte {
	var m byte
	if d.SymbolicID != nil {
		m |= diagSymbolicIDFlag
	}
	if d.NamespaceURI != nil {
		m |= diagNamespaceURIFlag
	}
	if d.LocalizedText != nil {
		m |= diagLocalizedTextFlag
	}
	if d.Locale != nil {
		m |= diagLocaleFlag
	}
	if d.AdditionalInfo != nil {
		m |= diagAdditionalInfoFlag
	}
	if d.InnerStatusCode != nil {
		m |= diagInnerStatusCodeFlag
	}
	if d.InnerDiagnosticInfo != nil {
		m |= diagInnerDiagnosticFlag
	}
	return m
}

// EncodeDiagnosticInfo writes the 1-byte presence mask followed by the
// fields it flags, recursing into InnerDiagnosticInfo up to
// opts.MaxRecursionDepth (spec 4.7, 5).
func EncodeDiagnosticInfo(w *Writer, d *DiagnosticInfo, depth int, opts *CodecOptions) error {
	o := opts.resolved()
	if d == nil {
		return w.WriteByte(0)
	}
	if depth > o.MaxRecursionDepth {
		return ErrRecursionLimit
	}
	if err := w.WriteByte(d.mask()); err != nil {
		return err
	}
	if d.SymbolicID != nil {
		if err := EncodeInt32(w, *d.SymbolicID); err != nil {
			return err
		}
	}
	if d.NamespaceURI != nil {
		if err := EncodeInt32(w, *d.NamespaceURI); err != nil {
			return err
		}
	}
	if d.LocalizedText != nil {
		if err := EncodeInt32(w, *d.LocalizedText); err != nil {
			return err
		}
	}
	if d.Locale != nil {
		if err := EncodeInt32(w, *d.Locale); err != nil {
			return err
		}
	}
	if d.AdditionalInfo != nil {
		if err := EncodeString(w, d.AdditionalInfo); err != nil {
			return err
		}
	}
	if d.InnerStatusCode != nil {
		if err := EncodeStatusCode(w, *d.InnerStatusCode); err != nil {
			return err
		}
	}
	if d.InnerDiagnosticInfo != nil {
		if err := EncodeDiagnosticInfo(w, d.InnerDiagnosticInfo, depth+1, opts); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDiagnosticInfo reads the 1-byte presence mask and the fields it
// flags, recursing into an inner diagnostic info and failing with a
// DecodingError if recursion would exceed opts.MaxRecursionDepth (spec 4.7,
// 8 "recursed to the depth limit and one level past it must fail cleanly").
func DecodeDiagnosticInfo(r *Reader, depth int, opts *CodecOptions) (*DiagnosticInfo, error) {
	o := opts.resolved()
	if depth > o.MaxRecursionDepth {
		return nil, ErrRecursionLimit
	}
	mask, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if mask == 0 {
		return &DiagnosticInfo{}, nil
	}
	d := &DiagnosticInfo{}
	if mask&diagSymbolicIDFlag != 0 {
		v, err := DecodeInt32(r)
		if err != nil {
			return nil, err
		}
		d.SymbolicID = &v
	}
	if mask&diagNamespaceURIFlag != 0 {
		v, err := DecodeInt32(r)
		if err != nil {
			return nil, err
		}
		d.NamespaceURI = &v
	}
	if mask&diagLocalizedTextFlag != 0 {
		v, err := DecodeInt32(r)
		if err != nil {
			return nil, err
		}
		d.LocalizedText = &v
	}
	if mask&diagLocaleFlag != 0 {
		v, err := DecodeInt32(r)
		if err != nil {
			return nil, err
		}
		d.Locale = &v
	}
	if mask&diagAdditionalInfoFlag != 0 {
		s, err := DecodeString(r, opts)
		if err != nil {
			return nil, err
		}
		d.AdditionalInfo = s
	}
	if mask&diagInnerStatusCodeFlag != 0 {
		v, err := DecodeStatusCode(r)
		if err != nil {
			return nil, err
		}
		d.InnerStatusCode = &v
	}
	if mask&diagInnerDiagnosticFlag != 0 {
		inner, err := DecodeDiagnosticInfo(r, depth+1, opts)
		if err != nil {
			return nil, err
		}
		d.InnerDiagnosticInfo = inner
	}
	return d, nil
}

// CalcSizeDiagnosticInfo mirrors EncodeDiagnosticInfo without writing.
func CalcSizeDiagnosticInfo(d *DiagnosticInfo) int {
	if d == nil {
		return 1
	}
	n := 1
	if d.SymbolicID != nil {
		n += 4
	}
	if d.NamespaceURI != nil {
		n += 4
	}
	if d.LocalizedText != nil {
		n += 4
	}
	if d.Locale != nil {
		n += 4
	}
	if d.AdditionalInfo != nil {
		n += calcSizeString(d.AdditionalInfo)
	}
	if d.InnerStatusCode != nil {
		n += 4
	}
	if d.InnerDiagnosticInfo != nil {
		n += CalcSizeDiagnosticInfo(d.InnerDiagnosticInfo)
	}
	return n
}
