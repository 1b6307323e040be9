// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// QualifiedName is (namespace index, name) (spec 3).
type QualifiedName struct {
	NamespaceIndex uint16
	Name           *string
}

// EncodeQualifiedName writes the namespace index then the name string.
func EncodeQualifiedName(w *Writer, qn QualifiedName) error {
	if err := EncodeUInt16(w, qn.NamespaceIndex); err != nil {
		return err
	}
	return EncodeString(w, qn.Name)
}

// DecodeQualifiedName reads the namespace index then the name string.
func DecodeQualifiedName(r *Reader, opts *CodecOptions) (QualifiedName, error) {
	ns, err := DecodeUInt16(r)
	if err != nil {
		return QualifiedName{}, err
	}
	name, err := DecodeString(r, opts)
	if err != nil {
		return QualifiedName{}, err
	}
	return QualifiedName{NamespaceIndex: ns, Name: name}, nil
}

// localizedTextEncodingMask bits (locale present, text present) used by
// the binary LocalizedText encoding, which - unlike the plain two-string
// layout spec 3 describes at the data-model level - is preceded on the
// wire by a 1-byte presence mask (IEC 62541-6 Table 15).
const (
	localizedTextLocaleFlag byte = 0x01
	localizedTextTextFlag   byte = 0x02
)

// LocalizedText is (locale, text); either may be null (spec 3).
type LocalizedText struct {
	Locale *string
	Text   *string
}

// EncodeLocalizedText writes the 1-byte presence mask, then locale (if
// present), then text (if present).
func EncodeLocalizedText(w *Writer, lt LocalizedText) error {
	var mask byte
	if lt.Locale != nil {
		mask |= localizedTextLocaleFlag
	}
	if lt.Text != nil {
		mask |= localizedTextTextFlag
	}
	if err := w.WriteByte(mask); err != nil {
		return err
	}
	if lt.Locale != nil {
		if err := EncodeString(w, lt.Locale); err != nil {
			return err
		}
	}
	if lt.Text != nil {
		if err := EncodeString(w, lt.Text); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLocalizedText reads the 1-byte presence mask, then the fields it
// flags.
func DecodeLocalizedText(r *Reader, opts *CodecOptions) (LocalizedText, error) {
	mask, err := r.ReadByte()
	if err != nil {
		return LocalizedText{}, err
	}
	var lt LocalizedText
	if mask&localizedTextLocaleFlag != 0 {
		lt.Locale, err = DecodeString(r, opts)
		if err != nil {
			return LocalizedText{}, err
		}
	}
	if mask&localizedTextTextFlag != 0 {
		lt.Text, err = DecodeString(r, opts)
		if err != nil {
			return LocalizedText{}, err
		}
	}
	return lt, nil
}

// StatusCode is a u32 result/severity code (spec 3). Severity lives in the
// top two bits: 0b00 Good, 0b01 Uncertain, 0b10 Bad.
type StatusCode uint32

// Good0 is the all-zero StatusCode, printed as null in non-reversible JSON
// (spec 4.11, scenario 5).
const Good0 StatusCode = 0

// IsGood reports whether the severity bits are 0b00.
func (s StatusCode) IsGood() bool { return s&0xC0000000 == 0 }

// IsBad reports whether the severity bits are 0b10.
func (s StatusCode) IsBad() bool { return s&0xC0000000 == 0x80000000 }

// EncodeStatusCode writes the raw u32 code.
func EncodeStatusCode(w *Writer, s StatusCode) error { return EncodeUInt32(w, uint32(s)) }

// DecodeStatusCode reads the raw u32 code.
func DecodeStatusCode(r *Reader) (StatusCode, error) {
	v, err := DecodeUInt32(r)
	return StatusCode(v), err
}
