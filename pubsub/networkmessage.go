// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package pubsub

import "github.com/opcua-pubsub/codec"

// PublisherID is a Variant-typed identifier (byte/u16/u32/u64/string), the
// wire form a NetworkMessage's UADPPublisherIDType byte selects.
type PublisherID struct {
	Type  ua.UADPPublisherIDType
	Byte  uint8
	U16   uint16
	U32   uint32
	U64   uint64
	Str   string
}

// GroupHeader carries the optional writer-group/versioning fields that
// let a subscriber detect configuration changes and gaps in delivery.
type GroupHeader struct {
	WriterGroupID        *uint16
	GroupVersion         *uint32
	NetworkMessageNumber *uint16
	SequenceNumber       *uint16
}

const (
	groupHeaderWriterGroupIDFlag  byte = 0x01
	groupHeaderGroupVersionFlag   byte = 0x02
	groupHeaderMessageNumberFlag  byte = 0x04
	groupHeaderSequenceNumberFlag byte = 0x08
)

func (g *GroupHeader) flags() byte {
	if g == nil {
		return 0
	}
	var f byte
	if g.WriterGroupID != nil {
		f |= groupHeaderWriterGroupIDFlag
	}
	if g.GroupVersion != nil {
		f |= groupHeaderGroupVersionFlag
	}
	if g.NetworkMessageNumber != nil {
		f |= groupHeaderMessageNumberFlag
	}
	if g.SequenceNumber != nil {
		f |= groupHeaderSequenceNumberFlag
	}
	return f
}

// NetworkMessage is the outer PubSub envelope: an optional publisher id,
// an optional dataset-class id, an optional group header, an optional
// payload header naming each DataSetMessage's writer id, optional
// timestamp/picoseconds/promoted fields, an optional security footer, and
// the ordered DataSetMessage payload (spec 3, 4.12).
type NetworkMessage struct {
	Version          byte
	MessageID        ua.Guid
	MessageType      ua.UADPNetworkMessageType
	PublisherID      *PublisherID
	DataSetClassID   *ua.Guid
	GroupHeader      *GroupHeader
	WriterIDs        []uint16 // payload header, parallel to Messages
	Timestamp        *int64
	Picoseconds      *uint16
	PromotedFields   []*ua.Variant
	Security         *SecurityHeader
	Messages         []*DataSetMessage
}

func (m *NetworkMessage) extendedFlags1Needed() bool {
	return (m.PublisherID != nil && m.PublisherID.Type != ua.PublisherIDTypeByte) ||
		m.DataSetClassID != nil || m.Security != nil || m.Timestamp != nil ||
		m.Picoseconds != nil || m.extendedFlags2Needed()
}

func (m *NetworkMessage) extendedFlags2Needed() bool {
	return m.PromotedFields != nil || m.MessageType != ua.NetworkMessageTypeDataSet
}

// EncodeNetworkMessage writes the bit-packed UADP flag bytes followed by
// every field they announce, in wire order (spec 6, 4.12): publisher id,
// dataset-class id, group header, payload header, timestamp, picoseconds,
// promoted fields, security header, then the DataSetMessage payload.
func EncodeNetworkMessage(w *ua.Writer, m *NetworkMessage, opts *ua.CodecOptions) error {
	flags1 := m.Version & ua.UADPVersionMask
	if m.PublisherID != nil {
		flags1 |= ua.UADPPublisherIDEnabled
	}
	if m.GroupHeader != nil {
		flags1 |= ua.UADPGroupHeaderEnabled
	}
	if m.WriterIDs != nil {
		flags1 |= ua.UADPPayloadHeader
	}
	extFlags1Needed := m.extendedFlags1Needed()
	if extFlags1Needed {
		flags1 |= ua.UADPExtendedFlags1
	}
	if err := w.WriteByte(flags1); err != nil {
		return err
	}

	if extFlags1Needed {
		var flags2 byte
		if m.PublisherID != nil {
			flags2 |= byte(m.PublisherID.Type) & ua.UADPPublisherIDTypeMask
		}
		if m.DataSetClassID != nil {
			flags2 |= ua.UADPDataSetClassIDFlag
		}
		if m.Security != nil {
			flags2 |= ua.UADPSecurityFlag
		}
		if m.Timestamp != nil {
			flags2 |= ua.UADPTimestampFlag
		}
		if m.Picoseconds != nil {
			flags2 |= ua.UADPPicosecondsFlag
		}
		extFlags2Needed := m.extendedFlags2Needed()
		if extFlags2Needed {
			flags2 |= ua.UADPExtendedFlags2
		}
		if err := w.WriteByte(flags2); err != nil {
			return err
		}
		if extFlags2Needed {
			flags3 := byte(m.MessageType) << ua.UADPMessageTypeShift & ua.UADPMessageTypeMask
			if m.PromotedFields != nil {
				flags3 |= ua.UADPPromotedFieldsFlag
			}
			if err := w.WriteByte(flags3); err != nil {
				return err
			}
		}
	}

	if err := ua.EncodeGuid(w, m.MessageID); err != nil {
		return err
	}

	if m.PublisherID != nil {
		if err := encodePublisherID(w, m.PublisherID); err != nil {
			return err
		}
	}
	if m.DataSetClassID != nil {
		if err := ua.EncodeGuid(w, *m.DataSetClassID); err != nil {
			return err
		}
	}
	if m.GroupHeader != nil {
		if err := encodeGroupHeader(w, m.GroupHeader); err != nil {
			return err
		}
	}
	if m.WriterIDs != nil {
		if err := w.WriteByte(byte(len(m.WriterIDs))); err != nil {
			return err
		}
		for _, id := range m.WriterIDs {
			if err := ua.EncodeUInt16(w, id); err != nil {
				return err
			}
		}
	}
	if m.Timestamp != nil {
		if err := ua.EncodeDateTime(w, *m.Timestamp); err != nil {
			return err
		}
	}
	if m.Picoseconds != nil {
		if err := ua.EncodeUInt16(w, *m.Picoseconds); err != nil {
			return err
		}
	}
	if m.PromotedFields != nil {
		if err := ua.EncodeUInt16(w, uint16(len(m.PromotedFields))); err != nil {
			return err
		}
		for _, f := range m.PromotedFields {
			if err := ua.EncodeVariant(w, f, nil, opts); err != nil {
				return err
			}
		}
	}
	if m.Security != nil {
		if err := EncodeSecurityHeader(w, m.Security); err != nil {
			return err
		}
	}
	for _, dsm := range m.Messages {
		if err := EncodeDataSetMessage(w, dsm, opts); err != nil {
			return err
		}
	}
	return nil
}

func encodePublisherID(w *ua.Writer, p *PublisherID) error {
	switch p.Type {
	case ua.PublisherIDTypeByte:
		return w.WriteByte(p.Byte)
	case ua.PublisherIDTypeUInt16:
		return ua.EncodeUInt16(w, p.U16)
	case ua.PublisherIDTypeUInt32:
		return ua.EncodeUInt32(w, p.U32)
	case ua.PublisherIDTypeUInt64:
		return ua.EncodeUInt64(w, p.U64)
	case ua.PublisherIDTypeString:
		s := p.Str
		return ua.EncodeString(w, &s)
	default:
		return ua.ErrUnknownBuiltinType
	}
}

func decodePublisherID(r *ua.Reader, typ ua.UADPPublisherIDType, opts *ua.CodecOptions) (*PublisherID, error) {
	p := &PublisherID{Type: typ}
	switch typ {
	case ua.PublisherIDTypeByte:
		b, err := r.ReadByte()
		p.Byte = b
		return p, err
	case ua.PublisherIDTypeUInt16:
		v, err := ua.DecodeUInt16(r)
		p.U16 = v
		return p, err
	case ua.PublisherIDTypeUInt32:
		v, err := ua.DecodeUInt32(r)
		p.U32 = v
		return p, err
	case ua.PublisherIDTypeUInt64:
		v, err := ua.DecodeUInt64(r)
		p.U64 = v
		return p, err
	case ua.PublisherIDTypeString:
		s, err := ua.DecodeString(r, opts)
		if err != nil {
			return nil, err
		}
		if s != nil {
			p.Str = *s
		}
		return p, nil
	default:
		return nil, ua.ErrUnknownBuiltinType
	}
}

func encodeGroupHeader(w *ua.Writer, g *GroupHeader) error {
	if err := w.WriteByte(g.flags()); err != nil {
		return err
	}
	if g.WriterGroupID != nil {
		if err := ua.EncodeUInt16(w, *g.WriterGroupID); err != nil {
			return err
		}
	}
	if g.GroupVersion != nil {
		if err := ua.EncodeUInt32(w, *g.GroupVersion); err != nil {
			return err
		}
	}
	if g.NetworkMessageNumber != nil {
		if err := ua.EncodeUInt16(w, *g.NetworkMessageNumber); err != nil {
			return err
		}
	}
	if g.SequenceNumber != nil {
		if err := ua.EncodeUInt16(w, *g.SequenceNumber); err != nil {
			return err
		}
	}
	return nil
}

func decodeGroupHeader(r *ua.Reader) (*GroupHeader, error) {
	flags, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	g := &GroupHeader{}
	if flags&groupHeaderWriterGroupIDFlag != 0 {
		v, err := ua.DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		g.WriterGroupID = &v
	}
	if flags&groupHeaderGroupVersionFlag != 0 {
		v, err := ua.DecodeUInt32(r)
		if err != nil {
			return nil, err
		}
		g.GroupVersion = &v
	}
	if flags&groupHeaderMessageNumberFlag != 0 {
		v, err := ua.DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		g.NetworkMessageNumber = &v
	}
	if flags&groupHeaderSequenceNumberFlag != 0 {
		v, err := ua.DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		g.SequenceNumber = &v
	}
	return g, nil
}

// DecodeNetworkMessage reads the UADP flag bytes and every field they
// announce, then decodes exactly len(WriterIDs) DataSetMessages from the
// payload if a payload header was present, or a single DataSetMessage
// otherwise (the common case for a NetworkMessage carrying one writer).
func DecodeNetworkMessage(r *ua.Reader, opts *ua.CodecOptions) (*NetworkMessage, error) {
	flags1, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	m := &NetworkMessage{Version: flags1 & ua.UADPVersionMask}
	publisherIDEnabled := flags1&ua.UADPPublisherIDEnabled != 0
	groupHeaderEnabled := flags1&ua.UADPGroupHeaderEnabled != 0
	payloadHeaderEnabled := flags1&ua.UADPPayloadHeader != 0

	publisherIDType := ua.PublisherIDTypeByte
	var dataSetClassIDFlag, securityFlag, timestampFlag, picosecondsFlag bool
	var promotedFieldsFlag bool
	m.MessageType = ua.NetworkMessageTypeDataSet

	if flags1&ua.UADPExtendedFlags1 != 0 {
		flags2, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		publisherIDType = ua.UADPPublisherIDType(flags2 & ua.UADPPublisherIDTypeMask)
		dataSetClassIDFlag = flags2&ua.UADPDataSetClassIDFlag != 0
		securityFlag = flags2&ua.UADPSecurityFlag != 0
		timestampFlag = flags2&ua.UADPTimestampFlag != 0
		picosecondsFlag = flags2&ua.UADPPicosecondsFlag != 0
		if flags2&ua.UADPExtendedFlags2 != 0 {
			flags3, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			promotedFieldsFlag = flags3&ua.UADPPromotedFieldsFlag != 0
			m.MessageType = ua.UADPNetworkMessageType((flags3 & ua.UADPMessageTypeMask) >> ua.UADPMessageTypeShift)
		}
	}

	messageID, err := ua.DecodeGuid(r)
	if err != nil {
		return nil, err
	}
	m.MessageID = messageID

	if publisherIDEnabled {
		p, err := decodePublisherID(r, publisherIDType, opts)
		if err != nil {
			return nil, err
		}
		m.PublisherID = p
	}
	if dataSetClassIDFlag {
		g, err := ua.DecodeGuid(r)
		if err != nil {
			return nil, err
		}
		m.DataSetClassID = &g
	}
	if groupHeaderEnabled {
		g, err := decodeGroupHeader(r)
		if err != nil {
			return nil, err
		}
		m.GroupHeader = g
	}
	var writerCount int
	if payloadHeaderEnabled {
		count, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		writerCount = int(count)
		ids := make([]uint16, writerCount)
		for i := range ids {
			ids[i], err = ua.DecodeUInt16(r)
			if err != nil {
				return nil, err
			}
		}
		m.WriterIDs = ids
	} else {
		writerCount = 1
	}
	if timestampFlag {
		t, err := ua.DecodeDateTime(r)
		if err != nil {
			return nil, err
		}
		m.Timestamp = &t
	}
	if picosecondsFlag {
		p, err := ua.DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		m.Picoseconds = &p
	}
	if promotedFieldsFlag {
		count, err := ua.DecodeUInt16(r)
		if err != nil {
			return nil, err
		}
		fields := make([]*ua.Variant, count)
		for i := range fields {
			v, err := ua.DecodeVariant(r, nil, opts)
			if err != nil {
				return nil, err
			}
			fields[i] = v
		}
		m.PromotedFields = fields
	}
	if securityFlag {
		s, err := DecodeSecurityHeader(r)
		if err != nil {
			return nil, err
		}
		m.Security = s
	}
	msgs := make([]*DataSetMessage, writerCount)
	for i := range msgs {
		dsm, err := DecodeDataSetMessage(r, opts)
		if err != nil {
			return nil, err
		}
		msgs[i] = dsm
	}
	m.Messages = msgs
	return m, nil
}
