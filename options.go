// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import "github.com/opcua-pubsub/codec/internal/log"

// Default bounds: a constant recursion depth for DiagnosticInfo/nested
// structures matching the fixed limit open62541 compiles in (see
// original_source/deps and ua_types_encoding_binary.c), and a JSON token
// budget larger than the original's but still bounded.
const (
	// DefaultMaxRecursionDepth bounds DiagnosticInfo.InnerDiagnosticInfo
	// nesting and nested structured-type recursion (spec 4.7, 5).
	DefaultMaxRecursionDepth = 20

	// DefaultMaxJSONTokens bounds the JSON tokenizer's flat token array
	// (spec 4.8, Open Question 1). The original's TOKENCOUNT is 1000;
	// this module grows the token array dynamically but still enforces a
	// cap so an adversarial document cannot exhaust memory.
	DefaultMaxJSONTokens = 1 << 16

	// DefaultMaxArrayLength bounds a single array or ByteString decode so
	// a forged length prefix cannot trigger an unbounded allocation.
	DefaultMaxArrayLength = 1 << 24
)

// CodecOptions threads decode-time bounds and an optional Logger through
// every Decode/DecodeJSON call, generalizing the teacher's pe.Options
// struct (pe.go: Fast, SectionEntropy, MaxCOFFSymbolsCount, ...).
type CodecOptions struct {
	// MaxRecursionDepth bounds DiagnosticInfo and nested structured-type
	// recursion. Zero means DefaultMaxRecursionDepth.
	MaxRecursionDepth int

	// MaxJSONTokens bounds the JSON tokenizer's token array. Zero means
	// DefaultMaxJSONTokens.
	MaxJSONTokens int

	// MaxArrayLength bounds any single array, String, or ByteString
	// length read from a length prefix. Zero means DefaultMaxArrayLength.
	MaxArrayLength int

	// Logger is carried with the options for callers; no encode or decode
	// function in this module writes to it. Nil means no logger.
	Logger log.Logger
}

// resolved returns a copy of opts with every zero-value bound replaced by
// its default. A nil opts resolves to all defaults.
func (opts *CodecOptions) resolved() CodecOptions {
	var r CodecOptions
	if opts != nil {
		r = *opts
	}
	if r.MaxRecursionDepth <= 0 {
		r.MaxRecursionDepth = DefaultMaxRecursionDepth
	}
	if r.MaxJSONTokens <= 0 {
		r.MaxJSONTokens = DefaultMaxJSONTokens
	}
	if r.MaxArrayLength <= 0 {
		r.MaxArrayLength = DefaultMaxArrayLength
	}
	return r
}

// Resolved is the exported form of resolved, used by jsoncodec (a
// separate package) to read effective bounds from a *CodecOptions that
// may be nil or partially zero-valued.
func (opts *CodecOptions) Resolved() CodecOptions {
	return opts.resolved()
}

// helper returns a log.Helper wrapping opts.Logger, substituting a no-op
// logger when none was configured - the same pattern as the teacher's
// File.logger field being populated from Options.Logger in pe.New.
func (opts *CodecOptions) helper() *log.Helper {
	if opts == nil {
		return log.NewHelper(nil)
	}
	return log.NewHelper(opts.Logger)
}
