// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package pubsub

import (
	"strconv"

	"github.com/opcua-pubsub/codec"
	"github.com/opcua-pubsub/codec/jsoncodec"
)

// EncodeDataSetMessageJSON writes m as
// {"DataSetWriterId":n,"SequenceNumber":n?,"MetaDataVersion":{...}?,
// "Timestamp":"..."?,"Status":...?,"Payload":{name:value,...}}, the JSON
// sibling of EncodeDataSetMessage. KeyFrame/Event Payload keys are the
// m.Fields names; a DeltaFrame's Payload keys are each DeltaField.Index
// written as a decimal string.
func EncodeDataSetMessageJSON(w *jsoncodec.Writer, m *DataSetMessage, reversible bool) error {
	if m.FieldEncoding == FieldEncodingRawData {
		return ua.ErrNotImplemented
	}
	w.WriteRaw(`{"DataSetWriterId":`)
	w.WriteUint(uint64(m.DataSetWriterID))
	if m.SequenceNumber != nil {
		w.WriteRaw(`,"SequenceNumber":`)
		w.WriteUint(uint64(*m.SequenceNumber))
	}
	if m.ConfigVersion != nil {
		w.WriteRaw(`,"MetaDataVersion":{"MajorVersion":`)
		w.WriteUint(uint64(m.ConfigVersion.MajorVersion))
		w.WriteRaw(`,"MinorVersion":`)
		w.WriteUint(uint64(m.ConfigVersion.MinorVersion))
		w.WriteRaw(`}`)
	}
	if m.Timestamp != nil {
		w.WriteRaw(`,"Timestamp":`)
		w.WriteDateTime(*m.Timestamp)
	}
	if m.Status != nil {
		w.WriteRaw(`,"Status":`)
		jsoncodec.EncodeStatusCode(w, *m.Status, reversible)
	}
	if m.Type != KeepAlive {
		w.WriteRaw(`,"Payload":{`)
		if err := encodePayload(w, m, reversible); err != nil {
			return err
		}
		w.WriteRaw(`}`)
	}
	w.WriteRaw(`}`)
	return nil
}

func encodePayload(w *jsoncodec.Writer, m *DataSetMessage, reversible bool) error {
	if m.Type == DeltaFrame {
		for i, f := range m.DeltaFields {
			if i > 0 {
				w.WriteRaw(",")
			}
			w.WriteQuotedString(strconv.Itoa(int(f.Index)))
			w.WriteRaw(":")
			if err := encodeFieldValueJSON(w, m.FieldEncoding, f.Value, f.Data, reversible); err != nil {
				return err
			}
		}
		return nil
	}
	for i, f := range m.Fields {
		if i > 0 {
			w.WriteRaw(",")
		}
		w.WriteQuotedString(f.Name)
		w.WriteRaw(":")
		if err := encodeFieldValueJSON(w, m.FieldEncoding, f.Value, f.Data, reversible); err != nil {
			return err
		}
	}
	return nil
}

func encodeFieldValueJSON(w *jsoncodec.Writer, enc FieldEncoding, v *ua.Variant, d *ua.DataValue, reversible bool) error {
	if enc == FieldEncodingDataValue {
		return jsoncodec.EncodeDataValue(w, d, reversible)
	}
	return jsoncodec.EncodeVariant(w, v, reversible)
}

// DecodeDataSetMessageJSON reads the object EncodeDataSetMessageJSON
// produces. Payload keys become Fields entries in object iteration order;
// a DeltaFrame's keys are parsed back to DeltaField.Index.
func DecodeDataSetMessageJSON(buf []byte, tokens []jsoncodec.Token, idx int, typ DataSetMessageType, enc FieldEncoding, opts *ua.CodecOptions) (*DataSetMessage, error) {
	fields, err := jsoncodec.ObjectFields(buf, tokens, idx)
	if err != nil {
		return nil, err
	}
	writerIDRaw, ok := fields["DataSetWriterId"]
	if !ok {
		return nil, jsoncodec.DecodingErrorf("DataSetMessage missing DataSetWriterId field")
	}
	writerID, err := strconv.ParseUint(writerIDRaw, 10, 16)
	if err != nil {
		return nil, jsoncodec.DecodingErrorf("malformed DataSetWriterId: %v", err)
	}
	m := &DataSetMessage{
		DataSetWriterID: uint16(writerID),
		Type:            typ,
		FieldEncoding:   enc,
	}
	if raw, ok := fields["SequenceNumber"]; ok {
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, jsoncodec.DecodingErrorf("malformed SequenceNumber: %v", err)
		}
		n := uint16(v)
		m.SequenceNumber = &n
	}
	if metaIdx, ok := jsoncodec.FindTokenIndex(buf, tokens, idx, "MetaDataVersion"); ok {
		metaFields, err := jsoncodec.ObjectFields(buf, tokens, metaIdx)
		if err != nil {
			return nil, err
		}
		major, err := strconv.ParseUint(metaFields["MajorVersion"], 10, 32)
		if err != nil {
			return nil, jsoncodec.DecodingErrorf("malformed MetaDataVersion.MajorVersion: %v", err)
		}
		minor, err := strconv.ParseUint(metaFields["MinorVersion"], 10, 32)
		if err != nil {
			return nil, jsoncodec.DecodingErrorf("malformed MetaDataVersion.MinorVersion: %v", err)
		}
		m.ConfigVersion = &ConfigurationVersion{MajorVersion: uint32(major), MinorVersion: uint32(minor)}
	}
	if raw, ok := fields["Timestamp"]; ok {
		t, err := jsoncodec.ParseDateTime(raw)
		if err != nil {
			return nil, err
		}
		m.Timestamp = &t
	}
	if statusIdx, ok := jsoncodec.FindTokenIndex(buf, tokens, idx, "Status"); ok {
		raw := jsoncodec.TokenText(buf, tokens[statusIdx])
		var statusFields map[string]string
		if tokens[statusIdx].Kind == jsoncodec.TokenObject {
			var err error
			statusFields, err = jsoncodec.ObjectFields(buf, tokens, statusIdx)
			if err != nil {
				return nil, err
			}
		}
		s, err := jsoncodec.DecodeStatusCode(raw, statusFields)
		if err != nil {
			return nil, err
		}
		m.Status = &s
	}
	if typ == KeepAlive {
		return m, nil
	}
	payloadIdx, ok := jsoncodec.FindTokenIndex(buf, tokens, idx, "Payload")
	if !ok {
		return m, nil
	}
	payloadFields, err := jsoncodec.ObjectFieldOrder(buf, tokens, payloadIdx)
	if err != nil {
		return nil, err
	}
	if typ == DeltaFrame {
		deltas := make([]DeltaField, 0, len(payloadFields))
		for _, kv := range payloadFields {
			i, err := strconv.ParseUint(kv.Key, 10, 16)
			if err != nil {
				return nil, jsoncodec.DecodingErrorf("malformed delta field index %q: %v", kv.Key, err)
			}
			v, d, err := decodeFieldValueJSON(buf, tokens, kv.ValueIdx, enc, opts)
			if err != nil {
				return nil, err
			}
			deltas = append(deltas, DeltaField{Index: uint16(i), Value: v, Data: d})
		}
		m.DeltaFields = deltas
		return m, nil
	}
	out := make([]Field, 0, len(payloadFields))
	for _, kv := range payloadFields {
		v, d, err := decodeFieldValueJSON(buf, tokens, kv.ValueIdx, enc, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, Field{Name: kv.Key, Value: v, Data: d})
	}
	m.Fields = out
	return m, nil
}

func decodeFieldValueJSON(buf []byte, tokens []jsoncodec.Token, idx int, enc FieldEncoding, opts *ua.CodecOptions) (*ua.Variant, *ua.DataValue, error) {
	if enc == FieldEncodingDataValue {
		d, err := jsoncodec.DecodeDataValue(buf, tokens, idx, opts)
		return nil, d, err
	}
	v, err := jsoncodec.DecodeVariant(buf, tokens, idx, opts)
	return v, nil, err
}
