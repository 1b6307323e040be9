// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package pubsub

import "github.com/opcua-pubsub/codec"

// Fuzz feeds data to DecodeNetworkMessage, the binary UADP decoder at the
// top of the call graph: a crash or panic anywhere under it (NodeId,
// Variant, DiagnosticInfo, DataSetMessage decode) surfaces here first.
func Fuzz(data []byte) int {
	m, err := DecodeNetworkMessage(ua.NewReader(data), nil)
	if err != nil {
		return 0
	}
	w := ua.NewWriter(make([]byte, len(data)+4096))
	if err := EncodeNetworkMessage(w, m, nil); err != nil {
		return 0
	}
	return 1
}
