// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

// Package statustable embeds the StatusCode -> symbolic name table that
// open62541 generates at build time from its Schema/StatusCode.csv
// (original_source). spec 9 Open Question 3 leaves that generation step
// external to this codec; this package is the swappable embedded asset the
// rest of the module treats as that external input, regenerable by editing
// table.json.
package statustable

import (
	_ "embed"
	"encoding/json"
	"strconv"
	"sync"
)

//go:embed table.json
var raw []byte

var (
	once  sync.Once
	names map[uint32]string
)

func load() {
	var withStringKeys map[string]string
	if err := json.Unmarshal(raw, &withStringKeys); err != nil {
		// The embedded asset is compiled in and covered by tests; a parse
		// failure here means the asset itself is corrupt.
		panic("statustable: malformed embedded table: " + err.Error())
	}
	names = make(map[uint32]string, len(withStringKeys))
	for k, v := range withStringKeys {
		code, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			continue
		}
		names[uint32(code)] = v
	}
}

// Name returns the symbolic name for code and true, or ("", false) when
// code is not present in the embedded table.
func Name(code uint32) (string, bool) {
	once.Do(load)
	name, ok := names[code]
	return name, ok
}
