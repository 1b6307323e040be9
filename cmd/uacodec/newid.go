// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/opcua-pubsub/codec"
	"github.com/opcua-pubsub/codec/jsoncodec"
)

// newMessageID mints a fresh NetworkMessage.MessageId the way a publisher
// would for each outgoing message, converting a random RFC 4122 UUID into
// the codec's Guid wire type.
func newMessageID() ua.Guid {
	id := uuid.New()
	b := id[:]
	var data4 [8]byte
	copy(data4[:], b[8:16])
	return ua.Guid{
		Data1: uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]),
		Data2: uint16(b[4])<<8 | uint16(b[5]),
		Data3: uint16(b[6])<<8 | uint16(b[7]),
		Data4: data4,
	}
}

var newIDCmd = &cobra.Command{
	Use:   "new-id",
	Short: "Print a fresh NetworkMessage MessageId",
	Run: func(cmd *cobra.Command, args []string) {
		w := jsoncodec.NewWriter(nil)
		w.WriteGuid(newMessageID())
		fmt.Println(string(w.Bytes()))
	},
}
