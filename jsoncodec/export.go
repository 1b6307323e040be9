// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package jsoncodec

// ObjectFields exports objectFields for callers outside this package (the
// pubsub package's DataSetMessage/NetworkMessage JSON envelope).
func ObjectFields(buf []byte, tokens []Token, idx int) (map[string]string, error) {
	return objectFields(buf, tokens, idx)
}

// FindTokenIndex exports findTokenIndex.
func FindTokenIndex(buf []byte, tokens []Token, objIdx int, name string) (int, bool) {
	return findTokenIndex(buf, tokens, objIdx, name)
}

// DecodingErrorf exports decodingErrorf.
func DecodingErrorf(format string, args ...interface{}) error {
	return decodingErrorf(format, args...)
}

// TokenText exports tokenText.
func TokenText(buf []byte, t Token) string {
	return tokenText(buf, t)
}

// TrimQuotes exports trimQuotes.
func TrimQuotes(s string) string {
	return trimQuotes(s)
}

// SkipValue exports skipValue.
func SkipValue(tokens []Token, idx int) int {
	return skipValue(tokens, idx)
}

// KV is one key/value pair of an object, in source order, as returned by
// ObjectFieldOrder.
type KV struct {
	Key      string
	ValueIdx int
}

// ObjectFieldOrder walks the object token at idx like objectFields, but
// preserves source order and returns each value's token index instead of
// its raw text - what a DataSetMessage Payload decoder needs to rebuild
// its field list in the order fields were published, which a Go map
// cannot preserve.
func ObjectFieldOrder(buf []byte, tokens []Token, idx int) ([]KV, error) {
	tok := tokens[idx]
	if tok.Kind != TokenObject {
		return nil, decodingErrorf("expected object token")
	}
	out := make([]KV, 0, tok.Size/2)
	i := idx + 1
	for n := 0; n < tok.Size/2; n++ {
		keyTok := tokens[i]
		key := string(buf[keyTok.Start:keyTok.End])
		i++
		out = append(out, KV{Key: key, ValueIdx: i})
		i = skipValue(tokens, i)
	}
	return out, nil
}
