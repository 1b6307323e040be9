// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import "github.com/opcua-pubsub/codec/internal/statustable"

// StatusCodeName returns the symbolic name of a StatusCode (e.g.
// "BadAggregateConfigurationRejected"), used by the non-reversible JSON
// StatusCode encoding (spec 4.11, scenario 5). Codes not present in the
// embedded table (spec 9, Open Question 3) report ok=false; callers fall
// back to the numeric form.
func StatusCodeName(code StatusCode) (name string, ok bool) {
	return statustable.Name(uint32(code))
}
