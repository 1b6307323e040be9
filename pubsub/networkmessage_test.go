// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package pubsub

import (
	"reflect"
	"testing"

	"github.com/opcua-pubsub/codec"
)

func simpleKeyFrame(writerID uint16) *DataSetMessage {
	return &DataSetMessage{
		DataSetWriterID: writerID,
		Type:            KeyFrame,
		FieldEncoding:   FieldEncodingVariant,
		Fields: []Field{
			{Value: &ua.Variant{Type: ua.TypeIDInt32, Scalar: int32(1)}},
		},
	}
}

func TestNetworkMessageMinimalRoundTrip(t *testing.T) {
	m := &NetworkMessage{
		Version:     1,
		MessageID:   ua.Guid{Data1: 1, Data2: 2, Data3: 3, Data4: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}},
		MessageType: ua.NetworkMessageTypeDataSet,
		Messages:    []*DataSetMessage{simpleKeyFrame(1)},
	}
	w := ua.NewWriter(make([]byte, 256))
	if err := EncodeNetworkMessage(w, m, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeNetworkMessage(ua.NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Version != m.Version || !reflect.DeepEqual(got.MessageID, m.MessageID) {
		t.Errorf("got %+v, want %+v", got, m)
	}
	if len(got.Messages) != 1 || got.Messages[0].DataSetWriterID != 1 {
		t.Errorf("got Messages %+v", got.Messages)
	}
}

func TestNetworkMessageFullFieldsRoundTrip(t *testing.T) {
	writerGroupID := uint16(5)
	groupVersion := uint32(100)
	msgNumber := uint16(3)
	groupSeq := uint16(9)
	dsClassID := ua.Guid{Data1: 9}
	timestamp := int64(137654523450000000)
	picoseconds := uint16(25)

	m := &NetworkMessage{
		Version:        1,
		MessageID:      ua.Guid{Data1: 42},
		MessageType:    ua.NetworkMessageTypeDataSet,
		PublisherID:    &PublisherID{Type: ua.PublisherIDTypeUInt32, U32: 777},
		DataSetClassID: &dsClassID,
		GroupHeader: &GroupHeader{
			WriterGroupID:        &writerGroupID,
			GroupVersion:         &groupVersion,
			NetworkMessageNumber: &msgNumber,
			SequenceNumber:       &groupSeq,
		},
		WriterIDs:      []uint16{1, 2},
		Timestamp:      &timestamp,
		Picoseconds:    &picoseconds,
		PromotedFields: []*ua.Variant{{Type: ua.TypeIDUInt32, Scalar: uint32(3)}},
		Messages:       []*DataSetMessage{simpleKeyFrame(1), simpleKeyFrame(2)},
	}

	w := ua.NewWriter(make([]byte, 512))
	if err := EncodeNetworkMessage(w, m, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeNetworkMessage(ua.NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PublisherID == nil || got.PublisherID.Type != ua.PublisherIDTypeUInt32 || got.PublisherID.U32 != 777 {
		t.Errorf("got PublisherID %+v", got.PublisherID)
	}
	if got.DataSetClassID == nil || !reflect.DeepEqual(*got.DataSetClassID, dsClassID) {
		t.Errorf("got DataSetClassID %+v, want %+v", got.DataSetClassID, dsClassID)
	}
	if got.GroupHeader == nil || *got.GroupHeader.WriterGroupID != writerGroupID ||
		*got.GroupHeader.GroupVersion != groupVersion {
		t.Errorf("got GroupHeader %+v", got.GroupHeader)
	}
	if !reflect.DeepEqual(got.WriterIDs, m.WriterIDs) {
		t.Errorf("got WriterIDs %v, want %v", got.WriterIDs, m.WriterIDs)
	}
	if got.Timestamp == nil || *got.Timestamp != timestamp {
		t.Errorf("got Timestamp %v, want %v", got.Timestamp, timestamp)
	}
	if got.Picoseconds == nil || *got.Picoseconds != picoseconds {
		t.Errorf("got Picoseconds %v, want %v", got.Picoseconds, picoseconds)
	}
	if len(got.PromotedFields) != 1 || got.PromotedFields[0].Scalar.(uint32) != 3 {
		t.Errorf("got PromotedFields %+v", got.PromotedFields)
	}
	if len(got.Messages) != 2 {
		t.Errorf("got %d Messages, want 2", len(got.Messages))
	}
}

func TestNetworkMessagePublisherIDKinds(t *testing.T) {
	tests := []struct {
		name string
		pid  *PublisherID
	}{
		{"byte", &PublisherID{Type: ua.PublisherIDTypeByte, Byte: 7}},
		{"uint16", &PublisherID{Type: ua.PublisherIDTypeUInt16, U16: 1000}},
		{"uint64", &PublisherID{Type: ua.PublisherIDTypeUInt64, U64: 1 << 40}},
		{"string", &PublisherID{Type: ua.PublisherIDTypeString, Str: "pub1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &NetworkMessage{
				MessageID:   ua.Guid{},
				MessageType: ua.NetworkMessageTypeDataSet,
				PublisherID: tt.pid,
				Messages:    []*DataSetMessage{simpleKeyFrame(1)},
			}
			w := ua.NewWriter(make([]byte, 256))
			if err := EncodeNetworkMessage(w, m, nil); err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodeNetworkMessage(ua.NewReader(w.Bytes()), nil)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got.PublisherID, tt.pid) {
				t.Errorf("got %+v, want %+v", got.PublisherID, tt.pid)
			}
		})
	}
}

func TestNetworkMessagePayloadHeaderMultipleWriters(t *testing.T) {
	m := &NetworkMessage{
		MessageID:   ua.Guid{},
		MessageType: ua.NetworkMessageTypeDataSet,
		WriterIDs:   []uint16{10, 20, 30},
		Messages:    []*DataSetMessage{simpleKeyFrame(10), simpleKeyFrame(20), simpleKeyFrame(30)},
	}
	w := ua.NewWriter(make([]byte, 512))
	if err := EncodeNetworkMessage(w, m, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeNetworkMessage(ua.NewReader(w.Bytes()), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("got %d Messages, want 3", len(got.Messages))
	}
	for i, want := range []uint16{10, 20, 30} {
		if got.Messages[i].DataSetWriterID != want {
			t.Errorf("Messages[%d].DataSetWriterID = %d, want %d", i, got.Messages[i].DataSetWriterID, want)
		}
	}
}
