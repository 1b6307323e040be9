// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// DataValue field-presence mask bits (IEC 62541-6 Table 15).
const (
	dataValueValueFlag            byte = 0x01
	dataValueStatusFlag           byte = 0x02
	dataValueSourceTimestampFlag  byte = 0x04
	dataValueServerTimestampFlag  byte = 0x08
	dataValueSourcePicosecFlag    byte = 0x10
	dataValueServerPicosecFlag    byte = 0x20
)

// DataValue is a value Variant plus status and source/server
// timestamps/picoseconds, each independently optional (spec 3). A
// DataValue with no flag set is equivalent to null (spec 4.10).
type DataValue struct {
	Value             *Variant
	Status            *StatusCode
	SourceTimestamp   *int64 // DateTime ticks
	ServerTimestamp   *int64
	SourcePicoseconds *uint16
	ServerPicoseconds *uint16
}

// IsNull reports whether no field is set.
func (d *DataValue) IsNull() bool {
	return d == nil || (d.Value == nil && d.Status == nil && d.SourceTimestamp == nil &&
		d.ServerTimestamp == nil && d.SourcePicoseconds == nil && d.ServerPicoseconds == nil)
}

func (d *DataValue) mask() byte {
	var m byte
	if d.Value != nil {
		m |= dataValueValueFlag
	}
	if d.Status != nil {
		m |= dataValueStatusFlag
	}
	if d.SourceTimestamp != nil {
		m |= dataValueSourceTimestampFlag
	}
	if d.ServerTimestamp != nil {
		m |= dataValueServerTimestampFlag
	}
	if d.SourcePicoseconds != nil {
		m |= dataValueSourcePicosecFlag
	}
	if d.ServerPicoseconds != nil {
		m |= dataValueServerPicosecFlag
	}
	return m
}

// EncodeDataValue writes the 1-byte presence mask followed by the fields
// it flags, in declaration order.
func EncodeDataValue(w *Writer, d *DataValue, opts *CodecOptions) error {
	if d == nil {
		return w.WriteByte(0)
	}
	if err := w.WriteByte(d.mask()); err != nil {
		return err
	}
	if d.Value != nil {
		if err := EncodeVariant(w, d.Value, nil, opts); err != nil {
			return err
		}
	}
	if d.Status != nil {
		if err := EncodeStatusCode(w, *d.Status); err != nil {
			return err
		}
	}
	if d.SourceTimestamp != nil {
		if err := EncodeDateTime(w, *d.SourceTimestamp); err != nil {
			return err
		}
	}
	if d.ServerTimestamp != nil {
		if err := EncodeDateTime(w, *d.ServerTimestamp); err != nil {
			return err
		}
	}
	if d.SourcePicoseconds != nil {
		if err := EncodeUInt16(w, *d.SourcePicoseconds); err != nil {
			return err
		}
	}
	if d.ServerPicoseconds != nil {
		if err := EncodeUInt16(w, *d.ServerPicoseconds); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDataValue reads the 1-byte presence mask and the fields it flags.
func DecodeDataValue(r *Reader, opts *CodecOptions) (*DataValue, error) {
	mask, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	d := &DataValue{}
	if mask&dataValueValueFlag != 0 {
		v, err := DecodeVariant(r, nil, opts)
		if err != nil {
			return nil, err
		}
		d.Value = v
	}
	if mask&dataValueStatusFlag != 0 {
		s, err := DecodeStatusCode(r)
		if err != nil {
			return nil, err
		}
		d.Status = &s
	}
	if mask&dataValueSourceTimestampFlag != 0 {
		t, err := DecodeDateTime(r)
		if err != nil {
			return nil, err
		}
		d.SourceTimestamp = &t
	}
	if mask&dataValueServerTimestampFlag != 0 {
		t, err := DecodeDateTime(r)
		if err != nil {
			return nil, err
		}
		d.ServerTimestamp = &t
	}
	if mask&dataValueSourcePicosecFlag != 0 {
		p, err := DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		d.SourcePicoseconds = &p
	}
	if mask&dataValueServerPicosecFlag != 0 {
		p, err := DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		d.ServerPicoseconds = &p
	}
	return d, nil
}

// CalcSizeDataValue mirrors EncodeDataValue without writing.
func CalcSizeDataValue(d *DataValue) int {
	if d == nil {
		return 1
	}
	n := 1
	if d.Value != nil {
		n += CalcSizeVariant(d.Value)
	}
	if d.Status != nil {
		n += 4
	}
	if d.SourceTimestamp != nil {
		n += 8
	}
	if d.ServerTimestamp != nil {
		n += 8
	}
	if d.SourcePicoseconds != nil {
		n += 2
	}
	if d.ServerPicoseconds != nil {
		n += 2
	}
	return n
}
