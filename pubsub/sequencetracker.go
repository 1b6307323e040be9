// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package pubsub

import "sync"

// SequenceTracker detects out-of-order and duplicate DataSetMessage
// delivery per DataSetWriterId, the way a subscriber's PubSubManager
// would track the last sequence number it accepted from each writer. The
// codec itself is stateless across messages; this helper is opt-in for
// callers that need the channel-lifecycle bookkeeping on top of it.
type SequenceTracker struct {
	mu   sync.Mutex
	last map[uint16]uint16
}

// NewSequenceTracker returns an empty tracker.
func NewSequenceTracker() *SequenceTracker {
	return &SequenceTracker{last: make(map[uint16]uint16)}
}

// Accept reports whether seq is a valid next sequence number for writerID,
// updating the tracker's state if so. seq is accepted when its distance
// forward from the last accepted value (modulo 65536) is no larger than
// its distance backward, so a small wraparound such as 65534 to 2 counts
// as valid; a repeat of the last value, or a value closer behind it than
// ahead of it, is treated as a duplicate or reorder and rejected.
func (t *SequenceTracker) Accept(writerID uint16, seq uint16) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev, ok := t.last[writerID]
	if !ok {
		t.last[writerID] = seq
		return true
	}
	if seq == prev {
		return false
	}
	// Valid forward progress, including wraparound: the gap measured going
	// forward from prev to seq is smaller than the gap measured backward.
	forward := seq - prev
	backward := prev - seq
	if forward <= backward {
		t.last[writerID] = seq
		return true
	}
	return false
}

// Reset forgets writerID's tracked sequence number, e.g. after the
// subscriber reconnects to a writer group.
func (t *SequenceTracker) Reset(writerID uint16) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, writerID)
}
