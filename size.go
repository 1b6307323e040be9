// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// calcSizeString mirrors EncodeString without writing: 4 bytes for the
// length prefix plus the UTF-8 byte length, or just 4 for a nil (null)
// string (spec 4.2).
func calcSizeString(s *string) int {
	if s == nil {
		return 4
	}
	return 4 + len(*s)
}

// calcSizeByteString mirrors EncodeByteString without writing.
func calcSizeByteString(b []byte) int {
	if b == nil {
		return 4
	}
	return 4 + len(b)
}

// calcSizeNodeID mirrors EncodeNodeID without writing: the 1-byte tag plus
// the tag-specific body (spec 4.3).
func calcSizeNodeID(id NodeID) int {
	tag, err := nodeIDEncodeTag(id)
	if err != nil {
		return 1
	}
	n := 1
	switch tag & expandedNodeIDTagMask {
	case nodeIDTagTwoByte:
		n += 1
	case nodeIDTagFourByte:
		n += 1 + 2
	case nodeIDTagNumeric:
		n += 2 + 4
	case nodeIDTagString:
		s := id.StringID
		n += 2 + calcSizeString(&s)
	case nodeIDTagGUID:
		n += 2 + 16
	case nodeIDTagByteString:
		n += 2 + calcSizeByteString(id.ByteStringID)
	}
	return n
}

// calcSizeExpandedNodeID mirrors EncodeExpandedNodeID without writing.
func calcSizeExpandedNodeID(id ExpandedNodeID) int {
	n := calcSizeNodeID(id.NodeID)
	if id.NamespaceURI != nil {
		n += calcSizeString(id.NamespaceURI)
	}
	if id.ServerIndex != nil {
		n += 4
	}
	return n
}
