// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

// TypeID identifies one of the 25 OPC UA built-in types, or the 26th
// "structured type" slot dispatched through a TypeDescriptor (spec 3, 9).
// The numeric value is the wire value used in Variant encoding bits 0-5
// and in a structured-type member's target-type-index.
type TypeID byte

// Built-in type indices, IEC 62541-6 Table 14.
const (
	TypeIDBoolean         TypeID = 1
	TypeIDSByte           TypeID = 2
	TypeIDByte            TypeID = 3
	TypeIDInt16           TypeID = 4
	TypeIDUInt16          TypeID = 5
	TypeIDInt32           TypeID = 6
	TypeIDUInt32          TypeID = 7
	TypeIDInt64           TypeID = 8
	TypeIDUInt64          TypeID = 9
	TypeIDFloat           TypeID = 10
	TypeIDDouble          TypeID = 11
	TypeIDString          TypeID = 12
	TypeIDDateTime        TypeID = 13
	TypeIDGuid            TypeID = 14
	TypeIDByteString      TypeID = 15
	TypeIDXmlElement      TypeID = 16
	TypeIDNodeID          TypeID = 17
	TypeIDExpandedNodeID  TypeID = 18
	TypeIDStatusCode      TypeID = 19
	TypeIDQualifiedName   TypeID = 20
	TypeIDLocalizedText   TypeID = 21
	TypeIDExtensionObject TypeID = 22
	TypeIDDataValue       TypeID = 23
	TypeIDVariant         TypeID = 24
	TypeIDDiagnosticInfo  TypeID = 25

	// TypeIDStructured addresses "structured type", dispatched through a
	// TypeDescriptor rather than the builtin jump table. It is never a
	// legal Variant type-index byte; it selects the jump table's default
	// arm (spec 4.4, 9).
	TypeIDStructured TypeID = 26

	// maxBuiltinTypeID is the highest builtin index, used to bounds-check
	// a decoded Variant type-index byte before indexing the jump table.
	maxBuiltinTypeID = TypeIDDiagnosticInfo
)

var typeIDNames = [...]string{
	"", "Boolean", "SByte", "Byte", "Int16", "UInt16", "Int32", "UInt32",
	"Int64", "UInt64", "Float", "Double", "String", "DateTime", "Guid",
	"ByteString", "XmlElement", "NodeId", "ExpandedNodeId", "StatusCode",
	"QualifiedName", "LocalizedText", "ExtensionObject", "DataValue",
	"Variant", "DiagnosticInfo", "Structured",
}

func (t TypeID) String() string {
	if int(t) < len(typeIDNames) {
		return typeIDNames[t]
	}
	return "Unknown"
}

// IsBuiltin reports whether t names one of the 25 builtin types, as
// opposed to TypeIDStructured or an out-of-range value.
func (t TypeID) IsBuiltin() bool {
	return t >= TypeIDBoolean && t <= maxBuiltinTypeID
}

// NodeId binary encoding tag byte values (spec 4.3). The low six bits are
// the tag; the two high bits are ExpandedNodeId flags and only ever appear
// on the wire alongside an ExpandedNodeId.
const (
	nodeIDTagTwoByte    byte = 0x00
	nodeIDTagFourByte   byte = 0x01
	nodeIDTagNumeric    byte = 0x02
	nodeIDTagString     byte = 0x03
	nodeIDTagGUID       byte = 0x04
	nodeIDTagByteString byte = 0x05

	expandedNodeIDFlagNamespaceURI  byte = 0x80
	expandedNodeIDFlagServerIndex   byte = 0x40
	expandedNodeIDTagMask           byte = 0x3F
)

// Variant encoding-byte bitfield (spec 4.5).
const (
	variantTypeMask      byte = 0x3F // bits 0-5
	variantDimensionFlag byte = 0x40 // bit 6
	variantArrayFlag     byte = 0x80 // bit 7
)

// ExtensionObject body-encoding discriminants (spec 4.6).
const (
	extensionObjectBodyNone  byte = 0
	extensionObjectBodyBytes byte = 1
	extensionObjectBodyXML   byte = 2
)

// UADP NetworkMessage flag-byte bit masks (spec 6, §4.12).
const (
	// First flag byte.
	UADPVersionMask        byte = 0x0F
	UADPPublisherIDEnabled byte = 0x10
	UADPGroupHeaderEnabled byte = 0x20
	UADPPayloadHeader      byte = 0x40
	UADPExtendedFlags1     byte = 0x80

	// Second flag byte (ExtendedFlags1).
	UADPPublisherIDTypeMask byte = 0x07
	UADPDataSetClassIDFlag  byte = 0x08
	UADPSecurityFlag        byte = 0x10
	UADPTimestampFlag       byte = 0x20
	UADPPicosecondsFlag     byte = 0x40
	UADPExtendedFlags2      byte = 0x80

	// Third flag byte (ExtendedFlags2).
	UADPChunkFlag          byte = 0x01
	UADPPromotedFieldsFlag byte = 0x02
	UADPMessageTypeMask    byte = 0x1C
	UADPMessageTypeShift   uint = 2
)

// UADPPublisherIDType is the tag selecting the wire form of a
// NetworkMessage's Variant-typed PublisherId (spec 3, 6).
type UADPPublisherIDType byte

const (
	PublisherIDTypeByte   UADPPublisherIDType = 0x00
	PublisherIDTypeUInt16 UADPPublisherIDType = 0x01
	PublisherIDTypeUInt32 UADPPublisherIDType = 0x02
	PublisherIDTypeUInt64 UADPPublisherIDType = 0x03
	PublisherIDTypeString UADPPublisherIDType = 0x04
)

// UADPNetworkMessageType is the 3-bit message-type field packed into
// ExtendedFlags2 (spec 6, shifted left by UADPMessageTypeShift).
type UADPNetworkMessageType byte

const (
	NetworkMessageTypeDataSet     UADPNetworkMessageType = 0
	NetworkMessageTypeDiscoveryRequest UADPNetworkMessageType = 1
	NetworkMessageTypeDiscoveryResponse UADPNetworkMessageType = 2
)

// DataSetMessageType is the 4-bit message-type field in a DataSetMessage
// header (spec 4.13).
type DataSetMessageType byte

const (
	DataSetMessageKeyFrame DataSetMessageType = iota
	DataSetMessageDeltaFrame
	DataSetMessageEvent
	DataSetMessageKeepAlive
)

func (t DataSetMessageType) String() string {
	switch t {
	case DataSetMessageKeyFrame:
		return "KeyFrame"
	case DataSetMessageDeltaFrame:
		return "DeltaFrame"
	case DataSetMessageEvent:
		return "Event"
	case DataSetMessageKeepAlive:
		return "KeepAlive"
	default:
		return "Unknown"
	}
}
