// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package pubsub

import (
	"testing"

	"github.com/opcua-pubsub/codec"
)

func TestDataSetMessageKeyFrameRoundTrip(t *testing.T) {
	seq := uint16(7)
	status := ua.StatusCode(0)
	m := &DataSetMessage{
		DataSetWriterID: 1,
		Type:            KeyFrame,
		FieldEncoding:   FieldEncodingVariant,
		SequenceNumber:  &seq,
		Status:          &status,
		Fields: []Field{
			{Value: &ua.Variant{Type: ua.TypeIDInt32, Scalar: int32(42)}},
			{Value: &ua.Variant{Type: ua.TypeIDBoolean, Scalar: true}},
		},
	}

	w := ua.NewWriter(make([]byte, 256))
	if err := EncodeDataSetMessage(w, m, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDataSetMessage(ua.NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.DataSetWriterID != m.DataSetWriterID || got.Type != m.Type {
		t.Errorf("got %+v, want %+v", got, m)
	}
	if got.SequenceNumber == nil || *got.SequenceNumber != seq {
		t.Errorf("got SequenceNumber %v, want %v", got.SequenceNumber, seq)
	}
	if len(got.Fields) != 2 || got.Fields[0].Value.Scalar.(int32) != 42 || got.Fields[1].Value.Scalar.(bool) != true {
		t.Errorf("got Fields %+v", got.Fields)
	}
	if size := CalcSizeDataSetMessage(m); size != len(w.Bytes()) {
		t.Errorf("CalcSizeDataSetMessage = %d, want %d", size, len(w.Bytes()))
	}
}

func TestDataSetMessageDeltaFrameRoundTrip(t *testing.T) {
	m := &DataSetMessage{
		DataSetWriterID: 2,
		Type:            DeltaFrame,
		FieldEncoding:   FieldEncodingVariant,
		DeltaFields: []DeltaField{
			{Index: 3, Value: &ua.Variant{Type: ua.TypeIDDouble, Scalar: 3.5}},
		},
	}
	w := ua.NewWriter(make([]byte, 128))
	if err := EncodeDataSetMessage(w, m, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDataSetMessage(ua.NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.DeltaFields) != 1 || got.DeltaFields[0].Index != 3 || got.DeltaFields[0].Value.Scalar.(float64) != 3.5 {
		t.Errorf("got DeltaFields %+v", got.DeltaFields)
	}
}

func TestDataSetMessageKeepAliveRoundTrip(t *testing.T) {
	m := &DataSetMessage{DataSetWriterID: 9, Type: KeepAlive}
	w := ua.NewWriter(make([]byte, 16))
	if err := EncodeDataSetMessage(w, m, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if size := CalcSizeDataSetMessage(m); size != len(w.Bytes()) {
		t.Errorf("CalcSizeDataSetMessage = %d, want %d", size, len(w.Bytes()))
	}
	got, err := DecodeDataSetMessage(ua.NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Fields) != 0 || len(got.DeltaFields) != 0 {
		t.Errorf("KeepAlive should carry no payload, got %+v", got)
	}
}

func TestDataSetMessageDataValueEncoding(t *testing.T) {
	status := ua.StatusCode(0)
	m := &DataSetMessage{
		DataSetWriterID: 4,
		Type:            KeyFrame,
		FieldEncoding:   FieldEncodingDataValue,
		Fields: []Field{
			{Data: &ua.DataValue{
				Value:  &ua.Variant{Type: ua.TypeIDInt32, Scalar: int32(11)},
				Status: &status,
			}},
		},
	}
	w := ua.NewWriter(make([]byte, 128))
	if err := EncodeDataSetMessage(w, m, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDataSetMessage(ua.NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Fields) != 1 || got.Fields[0].Data == nil || got.Fields[0].Data.Value.Scalar.(int32) != 11 {
		t.Errorf("got Fields %+v", got.Fields)
	}
}

func TestDataSetMessageRawDataNotImplemented(t *testing.T) {
	m := &DataSetMessage{DataSetWriterID: 1, Type: KeyFrame, FieldEncoding: FieldEncodingRawData}
	w := ua.NewWriter(make([]byte, 16))
	if err := EncodeDataSetMessage(w, m, nil); err != ua.ErrNotImplemented {
		t.Errorf("got %v, want ErrNotImplemented", err)
	}
}
