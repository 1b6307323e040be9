// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

// Package ua implements the binary and JSON wire codecs for the OPC UA
// built-in type system described in IEC 62541-6: fixed-width primitives,
// the tagged NodeId/ExpandedNodeId forms, the self-describing Variant and
// ExtensionObject wrappers, the recursive DiagnosticInfo structure, and the
// generic structured-type field walker that drives all of them from a
// TypeDescriptor.
//
// Encoding never allocates beyond the destination buffer the caller
// supplies; decoding allocates only into freshly returned values, which the
// caller owns. Every call operates on a single contiguous buffer - there is
// no streaming or incremental mode.
package ua
