// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
)

// MemberDescriptor describes one field of a structured type: its target
// builtin (or TypeIDStructured for a nested structured type), whether it
// is an array, whether its type lives in namespace zero, and which Go
// struct field it binds to (spec 4.4).
type MemberDescriptor struct {
	Name          string
	Target        TypeID
	IsArray       bool
	NamespaceZero bool
	Nested        *TypeDescriptor
	FieldIndex    int
}

// TypeDescriptor is the generic field-walker's input: the total memory
// size (informational, mirroring the C ABI's sizeof) and the ordered list
// of members, plus the reflect.Type of the Go struct the descriptor binds
// to, used so the generic walker never needs generated per-type code
// (spec 4.4, 9 "Global codec state").
type TypeDescriptor struct {
	Name     string
	TypeID   NodeID
	GoType   reflect.Type
	Size     int
	Members  []MemberDescriptor
}

// DescribeStruct reflects over a pointer-to-struct prototype and its
// parallel member list to build a TypeDescriptor, the Go equivalent of the
// generated type-descriptor table spec 1 calls an external input: callers
// build one DescribeStruct call per generated type, once, usually in an
// init function.
func DescribeStruct(name string, typeID NodeID, prototype interface{}, members []MemberDescriptor) *TypeDescriptor {
	t := reflect.TypeOf(prototype)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return &TypeDescriptor{
		Name:    name,
		TypeID:  typeID,
		GoType:  t,
		Size:    int(t.Size()),
		Members: members,
	}
}

// nodeIDKey is a comparable projection of NodeID suitable as a Go map key
// (NodeID itself contains a []byte field and is not comparable).
type nodeIDKey struct {
	ns   uint16
	kind NodeIDKind
	num  uint32
	str  string
	guid Guid
}

func keyOf(id NodeID) nodeIDKey {
	k := nodeIDKey{ns: id.Namespace, kind: id.Kind}
	switch id.Kind {
	case NodeIDNumeric:
		k.num = id.Numeric
	case NodeIDString:
		k.str = id.StringID
	case NodeIDGUID:
		k.guid = id.GUIDID
	case NodeIDByteString:
		k.str = string(id.ByteStringID)
	}
	return k
}

// hashOf derives a stable 64-bit LRU cache key for id by hashing its
// binary encoding with xxhash, so the four different NodeId wire shapes
// (spec 4.3) all resolve through one cache regardless of kind.
func hashOf(id NodeID) uint64 {
	buf := make([]byte, 0, 24)
	w := NewWriter(make([]byte, 64))
	if err := EncodeNodeID(w, id); err != nil {
		// EncodeNodeID only fails on an unknown Kind, which cannot occur
		// for a NodeID built through the exported constructors; fall back
		// to hashing the raw struct bytes if it ever does.
		buf = append(buf, byte(id.Kind), byte(id.Namespace), byte(id.Namespace>>8))
		return xxhash.Sum64(buf)
	}
	return xxhash.Sum64(w.Bytes())
}

// TypeTable resolves a structured type's numeric NodeId to its
// TypeDescriptor. descriptors is the authoritative list - the same shape
// as the generated descriptor table this module treats as an external
// input (spec 1) - and is the only thing Register writes to; a bounded
// github.com/hashicorp/golang-lru cache keyed by the
// github.com/cespare/xxhash/v2 hash of the NodeId's binary form (see
// SPEC_FULL.md domain stack) is the sole lookup path, rebuilt by scanning
// descriptors on a miss, so repeated ExtensionObject unwraps of the same
// handful of types in a decode stream don't rescan the list.
type TypeTable struct {
	descriptors []*TypeDescriptor
	cache       *lru.Cache
}

// NewTypeTable returns an empty TypeTable whose resolver cache holds at
// most cacheSize entries.
func NewTypeTable(cacheSize int) *TypeTable {
	if cacheSize <= 0 {
		cacheSize = 256
	}
	c, _ := lru.New(cacheSize)
	return &TypeTable{cache: c}
}

// Register appends td to the table's descriptor list; Resolve matches it
// by td.TypeID.
func (t *TypeTable) Register(td *TypeDescriptor) {
	t.descriptors = append(t.descriptors, td)
}

// Resolve looks up the TypeDescriptor for a numeric NodeId TypeId, first
// checking the LRU cache, then falling back to a linear scan of
// descriptors (mirroring a scan of the generated table) and populating the
// cache on a hit.
func (t *TypeTable) Resolve(id NodeID) (*TypeDescriptor, bool) {
	h := hashOf(id)
	if v, ok := t.cache.Get(h); ok {
		return v.(*TypeDescriptor), true
	}
	key := keyOf(id)
	for _, td := range t.descriptors {
		if keyOf(td.TypeID) == key {
			t.cache.Add(h, td)
			return td, true
		}
	}
	return nil, false
}
