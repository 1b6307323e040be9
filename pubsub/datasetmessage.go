// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

// Package pubsub implements the NetworkMessage/DataSetMessage framing layer
// on top of the ua package's built-in type codec: UADP bit-packed binary
// framing and the JSON envelope, both directions.
package pubsub

import "github.com/opcua-pubsub/codec"

// FieldEncoding selects how a DataSetMessage's payload values are carried:
// as bare Variants, as DataValues (value plus status/timestamps), or as
// RawData (the dataset's declared binary layout with no per-field
// envelope). RawData encode/decode is not implemented; see
// EncodeDataSetMessage/DecodeDataSetMessage.
type FieldEncoding byte

const (
	FieldEncodingVariant FieldEncoding = iota
	FieldEncodingRawData
	FieldEncodingDataValue
)

const (
	dsFlags1SequenceNumberFlag byte = 0x01
	dsFlags1StatusFlag         byte = 0x02
	dsFlags1ConfigVersionFlag  byte = 0x04
	dsFlags1TimestampFlag      byte = 0x08
	dsFlags1FieldEncodingMask  byte = 0x30
	dsFlags1FieldEncodingShift uint = 4
	dsFlags1TypeMask           byte = 0xC0
	dsFlags1TypeShift          uint = 6
)

// ConfigurationVersion is the (major, minor) dataset metadata version pair
// a DataSetMessage may carry so a subscriber can detect a stale local
// metadata cache.
type ConfigurationVersion struct {
	MajorVersion uint32
	MinorVersion uint32
}

// Field is one named value in a DataSetMessage's Payload: exactly one of
// Value or Data is set, matching FieldEncoding.
type Field struct {
	Name  string
	Value *ua.Variant
	Data  *ua.DataValue
}

// DeltaField is one (index, value) entry in a DeltaFrame payload.
type DeltaField struct {
	Index uint16
	Value *ua.Variant
	Data  *ua.DataValue
}

// DataSetMessage is one published record for one DataSetWriter: a
// key-frame (every field), a delta-frame (only changed fields, addressed
// by index), an event, or a keep-alive carrying no payload at all.
type DataSetMessage struct {
	DataSetWriterID      uint16
	Type                 DataSetMessageType
	FieldEncoding        FieldEncoding
	SequenceNumber       *uint16
	ConfigVersion        *ConfigurationVersion
	Timestamp            *int64
	Status               *ua.StatusCode
	Fields               []Field      // KeyFrame, Event
	DeltaFields          []DeltaField // DeltaFrame
}

// DataSetMessageType mirrors ua's DataSetMessageType 4-bit wire tag,
// re-exported here so pubsub callers don't need to import ua for it too.
type DataSetMessageType = ua.DataSetMessageType

const (
	KeyFrame   = ua.DataSetMessageKeyFrame
	DeltaFrame = ua.DataSetMessageDeltaFrame
	Event      = ua.DataSetMessageEvent
	KeepAlive  = ua.DataSetMessageKeepAlive
)

func (m *DataSetMessage) flags1() byte {
	var f byte
	if m.SequenceNumber != nil {
		f |= dsFlags1SequenceNumberFlag
	}
	if m.Status != nil {
		f |= dsFlags1StatusFlag
	}
	if m.ConfigVersion != nil {
		f |= dsFlags1ConfigVersionFlag
	}
	if m.Timestamp != nil {
		f |= dsFlags1TimestampFlag
	}
	f |= (byte(m.FieldEncoding) << dsFlags1FieldEncodingShift) & dsFlags1FieldEncodingMask
	f |= (byte(m.Type) << dsFlags1TypeShift) & dsFlags1TypeMask
	return f
}

// EncodeDataSetMessage writes the DataSetWriterId, the flags byte, the
// optional header fields it announces, and the payload the message Type
// and FieldEncoding select. RawData encoding returns ua.ErrNotImplemented.
func EncodeDataSetMessage(w *ua.Writer, m *DataSetMessage, opts *ua.CodecOptions) error {
	if err := ua.EncodeUInt16(w, m.DataSetWriterID); err != nil {
		return err
	}
	if err := w.WriteByte(m.flags1()); err != nil {
		return err
	}
	if m.SequenceNumber != nil {
		if err := ua.EncodeUInt16(w, *m.SequenceNumber); err != nil {
			return err
		}
	}
	if m.ConfigVersion != nil {
		if err := ua.EncodeUInt32(w, m.ConfigVersion.MajorVersion); err != nil {
			return err
		}
		if err := ua.EncodeUInt32(w, m.ConfigVersion.MinorVersion); err != nil {
			return err
		}
	}
	if m.Timestamp != nil {
		if err := ua.EncodeDateTime(w, *m.Timestamp); err != nil {
			return err
		}
	}
	if m.Status != nil {
		if err := ua.EncodeStatusCode(w, *m.Status); err != nil {
			return err
		}
	}
	if m.FieldEncoding == FieldEncodingRawData {
		return ua.ErrNotImplemented
	}
	switch m.Type {
	case KeepAlive:
		return nil
	case DeltaFrame:
		if err := ua.EncodeUInt16(w, uint16(len(m.DeltaFields))); err != nil {
			return err
		}
		for _, f := range m.DeltaFields {
			if err := ua.EncodeUInt16(w, f.Index); err != nil {
				return err
			}
			if err := encodeFieldValue(w, m.FieldEncoding, f.Value, f.Data, opts); err != nil {
				return err
			}
		}
		return nil
	default: // KeyFrame, Event
		if err := ua.EncodeUInt16(w, uint16(len(m.Fields))); err != nil {
			return err
		}
		for _, f := range m.Fields {
			if err := encodeFieldValue(w, m.FieldEncoding, f.Value, f.Data, opts); err != nil {
				return err
			}
		}
		return nil
	}
}

func encodeFieldValue(w *ua.Writer, enc FieldEncoding, v *ua.Variant, d *ua.DataValue, opts *ua.CodecOptions) error {
	if enc == FieldEncodingDataValue {
		return ua.EncodeDataValue(w, d, opts)
	}
	return ua.EncodeVariant(w, v, nil, opts)
}

// DecodeDataSetMessage reads the wire form EncodeDataSetMessage produces.
// Field/DeltaField names are left empty; callers that know the dataset's
// field order fill them in from their own metadata.
func DecodeDataSetMessage(r *ua.Reader, opts *ua.CodecOptions) (*DataSetMessage, error) {
	writerID, err := ua.DecodeUInt16(r)
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	m := &DataSetMessage{
		DataSetWriterID: writerID,
		FieldEncoding:   FieldEncoding((flags & dsFlags1FieldEncodingMask) >> dsFlags1FieldEncodingShift),
		Type:            DataSetMessageType((flags & dsFlags1TypeMask) >> dsFlags1TypeShift),
	}
	if flags&dsFlags1SequenceNumberFlag != 0 {
		v, err := ua.DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		m.SequenceNumber = &v
	}
	if flags&dsFlags1ConfigVersionFlag != 0 {
		major, err := ua.DecodeUInt32(r)
		if err != nil {
			return nil, err
		}
		minor, err := ua.DecodeUInt32(r)
		if err != nil {
			return nil, err
		}
		m.ConfigVersion = &ConfigurationVersion{MajorVersion: major, MinorVersion: minor}
	}
	if flags&dsFlags1TimestampFlag != 0 {
		t, err := ua.DecodeDateTime(r)
		if err != nil {
			return nil, err
		}
		m.Timestamp = &t
	}
	if flags&dsFlags1StatusFlag != 0 {
		s, err := ua.DecodeStatusCode(r)
		if err != nil {
			return nil, err
		}
		m.Status = &s
	}
	if m.FieldEncoding == FieldEncodingRawData {
		return nil, ua.ErrNotImplemented
	}
	switch m.Type {
	case KeepAlive:
		return m, nil
	case DeltaFrame:
		count, err := ua.DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		fields := make([]DeltaField, count)
		for i := range fields {
			idx, err := ua.DecodeUInt16(r)
			if err != nil {
				return nil, err
			}
			v, d, err := decodeFieldValue(r, m.FieldEncoding, opts)
			if err != nil {
				return nil, err
			}
			fields[i] = DeltaField{Index: idx, Value: v, Data: d}
		}
		m.DeltaFields = fields
		return m, nil
	default:
		count, err := ua.DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		fields := make([]Field, count)
		for i := range fields {
			v, d, err := decodeFieldValue(r, m.FieldEncoding, opts)
			if err != nil {
				return nil, err
			}
			fields[i] = Field{Value: v, Data: d}
		}
		m.Fields = fields
		return m, nil
	}
}

func decodeFieldValue(r *ua.Reader, enc FieldEncoding, opts *ua.CodecOptions) (*ua.Variant, *ua.DataValue, error) {
	if enc == FieldEncodingDataValue {
		d, err := ua.DecodeDataValue(r, opts)
		return nil, d, err
	}
	v, err := ua.DecodeVariant(r, nil, opts)
	return v, nil, err
}

// CalcSizeDataSetMessage mirrors EncodeDataSetMessage without writing.
func CalcSizeDataSetMessage(m *DataSetMessage) int {
	n := 2 + 1
	if m.SequenceNumber != nil {
		n += 2
	}
	if m.ConfigVersion != nil {
		n += 8
	}
	if m.Timestamp != nil {
		n += 8
	}
	if m.Status != nil {
		n += 4
	}
	if m.FieldEncoding == FieldEncodingRawData {
		return n
	}
	switch m.Type {
	case KeepAlive:
		return n
	case DeltaFrame:
		n += 2
		for _, f := range m.DeltaFields {
			n += 2 + calcSizeFieldValue(m.FieldEncoding, f.Value, f.Data)
		}
		return n
	default:
		n += 2
		for _, f := range m.Fields {
			n += calcSizeFieldValue(m.FieldEncoding, f.Value, f.Data)
		}
		return n
	}
}

func calcSizeFieldValue(enc FieldEncoding, v *ua.Variant, d *ua.DataValue) int {
	if enc == FieldEncodingDataValue {
		return ua.CalcSizeDataValue(d)
	}
	return ua.CalcSizeVariant(v)
}
