// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// NodeIDKind is the discriminant of the NodeId tagged union (spec 3).
type NodeIDKind byte

const (
	NodeIDNumeric NodeIDKind = iota
	NodeIDString
	NodeIDGUID
	NodeIDByteString
)

// NodeID is a tagged union over {numeric, string, guid, bytestring} plus a
// namespace index. Only the field named by Kind is meaningful; the others
// are never read by the codec, matching the invariant in spec 3 ("the
// identifier value is never read if the discriminant does not match").
type NodeID struct {
	Namespace    uint16
	Kind         NodeIDKind
	Numeric      uint32
	StringID     string
	GUIDID       Guid
	ByteStringID []byte
}

// NewNumericNodeID builds a numeric NodeId.
func NewNumericNodeID(ns uint16, id uint32) NodeID {
	return NodeID{Namespace: ns, Kind: NodeIDNumeric, Numeric: id}
}

// NewStringNodeID builds a string NodeId.
func NewStringNodeID(ns uint16, id string) NodeID {
	return NodeID{Namespace: ns, Kind: NodeIDString, StringID: id}
}

// EncodeNodeID picks the tightest binary form that fits and writes it
// (spec 4.3): two-byte when ns==0 and the numeric id fits a byte,
// four-byte when ns fits a byte and the id fits u16, numeric otherwise for
// numeric ids, and the dedicated tag for string/guid/bytestring kinds.
func EncodeNodeID(w *Writer, id NodeID) error {
	tag, err := nodeIDEncodeTag(id)
	if err != nil {
		return err
	}
	if err := w.WriteByte(tag); err != nil {
		return err
	}
	return encodeNodeIDBody(w, id, tag)
}

// nodeIDEncodeTag selects the tightest tag byte (without the
// ExpandedNodeId flag bits) for id.
func nodeIDEncodeTag(id NodeID) (byte, error) {
	switch id.Kind {
	case NodeIDNumeric:
		switch {
		case id.Namespace == 0 && id.Numeric <= 0xFF:
			return nodeIDTagTwoByte, nil
		case id.Namespace <= 0xFF && id.Numeric <= 0xFFFF:
			return nodeIDTagFourByte, nil
		default:
			return nodeIDTagNumeric, nil
		}
	case NodeIDString:
		return nodeIDTagString, nil
	case NodeIDGUID:
		return nodeIDTagGUID, nil
	case NodeIDByteString:
		return nodeIDTagByteString, nil
	default:
		return 0, wrap(EncodingError, "unknown NodeId kind %d", id.Kind)
	}
}

func encodeNodeIDBody(w *Writer, id NodeID, tag byte) error {
	switch tag & expandedNodeIDTagMask {
	case nodeIDTagTwoByte:
		return w.WriteByte(byte(id.Numeric))
	case nodeIDTagFourByte:
		if err := w.WriteByte(byte(id.Namespace)); err != nil {
			return err
		}
		return EncodeUInt16(w, uint16(id.Numeric))
	case nodeIDTagNumeric:
		if err := EncodeUInt16(w, id.Namespace); err != nil {
			return err
		}
		return EncodeUInt32(w, id.Numeric)
	case nodeIDTagString:
		if err := EncodeUInt16(w, id.Namespace); err != nil {
			return err
		}
		s := id.StringID
		return EncodeString(w, &s)
	case nodeIDTagGUID:
		if err := EncodeUInt16(w, id.Namespace); err != nil {
			return err
		}
		return EncodeGuid(w, id.GUIDID)
	case nodeIDTagByteString:
		if err := EncodeUInt16(w, id.Namespace); err != nil {
			return err
		}
		return EncodeByteString(w, id.ByteStringID)
	default:
		return wrap(EncodingError, "unknown NodeId tag 0x%02x", tag)
	}
}

// DecodeNodeID reads a NodeId's 1-byte tag and its tag-specific body
// (spec 4.3).
func DecodeNodeID(r *Reader, opts *CodecOptions) (NodeID, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return NodeID{}, err
	}
	return decodeNodeIDBody(r, tag&expandedNodeIDTagMask, opts)
}

func decodeNodeIDBody(r *Reader, tag byte, opts *CodecOptions) (NodeID, error) {
	switch tag {
	case nodeIDTagTwoByte:
		b, err := r.ReadByte()
		if err != nil {
			return NodeID{}, err
		}
		return NewNumericNodeID(0, uint32(b)), nil
	case nodeIDTagFourByte:
		nsB, err := r.ReadByte()
		if err != nil {
			return NodeID{}, err
		}
		id, err := DecodeUInt16(r)
		if err != nil {
			return NodeID{}, err
		}
		return NewNumericNodeID(uint16(nsB), uint32(id)), nil
	case nodeIDTagNumeric:
		ns, err := DecodeUInt16(r)
		if err != nil {
			return NodeID{}, err
		}
		id, err := DecodeUInt32(r)
		if err != nil {
			return NodeID{}, err
		}
		return NewNumericNodeID(ns, id), nil
	case nodeIDTagString:
		ns, err := DecodeUInt16(r)
		if err != nil {
			return NodeID{}, err
		}
		s, err := DecodeString(r, opts)
		if err != nil {
			return NodeID{}, err
		}
		str := ""
		if s != nil {
			str = *s
		}
		return NodeID{Namespace: ns, Kind: NodeIDString, StringID: str}, nil
	case nodeIDTagGUID:
		ns, err := DecodeUInt16(r)
		if err != nil {
			return NodeID{}, err
		}
		g, err := DecodeGuid(r)
		if err != nil {
			return NodeID{}, err
		}
		return NodeID{Namespace: ns, Kind: NodeIDGUID, GUIDID: g}, nil
	case nodeIDTagByteString:
		ns, err := DecodeUInt16(r)
		if err != nil {
			return NodeID{}, err
		}
		b, err := DecodeByteString(r, opts)
		if err != nil {
			return NodeID{}, err
		}
		return NodeID{Namespace: ns, Kind: NodeIDByteString, ByteStringID: b}, nil
	default:
		return NodeID{}, wrap(DecodingError, "unknown NodeId tag 0x%02x", tag)
	}
}

// ExpandedNodeID is a NodeId plus an optional namespace URI and optional
// server index (spec 3). When NamespaceURI is non-nil, receivers ignore
// NodeID.Namespace in favor of the URI (spec 4.3).
type ExpandedNodeID struct {
	NodeID       NodeID
	NamespaceURI *string
	ServerIndex  *uint32
}

// EncodeExpandedNodeID writes the NodeId body with the two ExpandedNodeId
// flag bits folded into its tag byte, followed by the URI (if flagged)
// then the server index (if flagged) - in that order (spec 4.3).
func EncodeExpandedNodeID(w *Writer, id ExpandedNodeID) error {
	tag, err := nodeIDEncodeTag(id.NodeID)
	if err != nil {
		return err
	}
	if id.NamespaceURI != nil {
		tag |= expandedNodeIDFlagNamespaceURI
	}
	if id.ServerIndex != nil {
		tag |= expandedNodeIDFlagServerIndex
	}
	if err := w.WriteByte(tag); err != nil {
		return err
	}
	if err := encodeNodeIDBody(w, id.NodeID, tag); err != nil {
		return err
	}
	if id.NamespaceURI != nil {
		if err := EncodeString(w, id.NamespaceURI); err != nil {
			return err
		}
	}
	if id.ServerIndex != nil {
		if err := EncodeUInt32(w, *id.ServerIndex); err != nil {
			return err
		}
	}
	return nil
}

// DecodeExpandedNodeID reads the NodeId body then, if flagged, the
// namespace URI and server index in that order (spec 4.3).
func DecodeExpandedNodeID(r *Reader, opts *CodecOptions) (ExpandedNodeID, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return ExpandedNodeID{}, err
	}
	nodeID, err := decodeNodeIDBody(r, tag&expandedNodeIDTagMask, opts)
	if err != nil {
		return ExpandedNodeID{}, err
	}
	out := ExpandedNodeID{NodeID: nodeID}
	if tag&expandedNodeIDFlagNamespaceURI != 0 {
		uri, err := DecodeString(r, opts)
		if err != nil {
			return ExpandedNodeID{}, err
		}
		out.NamespaceURI = uri
	}
	if tag&expandedNodeIDFlagServerIndex != 0 {
		idx, err := DecodeUInt32(r)
		if err != nil {
			return ExpandedNodeID{}, err
		}
		out.ServerIndex = &idx
	}
	return out, nil
}
