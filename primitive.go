// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import (
	"encoding/binary"
	"math"
	"time"
)

// Guid is the binary layout data1(u32 LE), data2(u16 LE), data3(u16 LE),
// data4(8 raw bytes) (spec 3, 4.2).
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// epoch1601 is the OPC UA DateTime epoch: 1601-01-01 00:00:00 UTC.
var epoch1601 = time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)

// ticksPerSecond is the number of 100ns ticks in one second.
const ticksPerSecond = int64(10_000_000)

// epoch1601Unix is epoch1601 in Unix seconds. The conversions below go
// through Unix seconds because a time.Duration cannot span the more than
// 292 years between 1601 and present-day timestamps.
var epoch1601Unix = epoch1601.Unix()

// DateTimeToTime converts signed 100ns-tick-since-1601 DateTime ticks to a
// time.Time in UTC.
func DateTimeToTime(ticks int64) time.Time {
	sec := ticks / ticksPerSecond
	nsec := (ticks % ticksPerSecond) * 100
	return time.Unix(epoch1601Unix+sec, nsec).UTC()
}

// TimeToDateTime converts a time.Time to signed 100ns-tick-since-1601
// DateTime ticks.
func TimeToDateTime(t time.Time) int64 {
	return (t.Unix()-epoch1601Unix)*ticksPerSecond + int64(t.Nanosecond())/100
}

// --- Encoders -------------------------------------------------------------

// EncodeBoolean writes a Boolean as a single byte, 0 or 1.
func EncodeBoolean(w *Writer, v bool) error {
	if v {
		return w.WriteByte(1)
	}
	return w.WriteByte(0)
}

// EncodeSByte writes a signed 8-bit integer.
func EncodeSByte(w *Writer, v int8) error { return w.WriteByte(byte(v)) }

// EncodeByte writes an unsigned 8-bit integer.
func EncodeByte(w *Writer, v uint8) error { return w.WriteByte(v) }

// EncodeInt16 writes a little-endian signed 16-bit integer.
func EncodeInt16(w *Writer, v int16) error { return EncodeUInt16(w, uint16(v)) }

// EncodeUInt16 writes a little-endian unsigned 16-bit integer.
func EncodeUInt16(w *Writer, v uint16) error {
	s, err := w.reserve(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(s, v)
	return nil
}

// EncodeInt32 writes a little-endian signed 32-bit integer.
func EncodeInt32(w *Writer, v int32) error { return EncodeUInt32(w, uint32(v)) }

// EncodeUInt32 writes a little-endian unsigned 32-bit integer.
func EncodeUInt32(w *Writer, v uint32) error {
	s, err := w.reserve(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(s, v)
	return nil
}

// EncodeInt64 writes a little-endian signed 64-bit integer.
func EncodeInt64(w *Writer, v int64) error { return EncodeUInt64(w, uint64(v)) }

// EncodeUInt64 writes a little-endian unsigned 64-bit integer.
func EncodeUInt64(w *Writer, v uint64) error {
	s, err := w.reserve(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(s, v)
	return nil
}

// EncodeFloat writes an IEEE-754 single-precision float, reinterpret-cast
// through math.Float32bits, little-endian.
func EncodeFloat(w *Writer, v float32) error {
	return EncodeUInt32(w, math.Float32bits(v))
}

// EncodeDouble writes an IEEE-754 double-precision float, reinterpret-cast
// through math.Float64bits, little-endian.
func EncodeDouble(w *Writer, v float64) error {
	return EncodeUInt64(w, math.Float64bits(v))
}

// EncodeDateTime writes signed i64 100ns ticks since 1601-01-01 UTC.
func EncodeDateTime(w *Writer, ticks int64) error { return EncodeInt64(w, ticks) }

// EncodeString writes a String/XmlElement: a signed i32 length prefix
// followed by the UTF-8 bytes. s == nil encodes length -1 (null); a non-nil
// empty string encodes length 0 (spec 4.2).
func EncodeString(w *Writer, s *string) error {
	if s == nil {
		return EncodeInt32(w, -1)
	}
	b := []byte(*s)
	if err := EncodeInt32(w, int32(len(b))); err != nil {
		return err
	}
	return w.Write(b)
}

// EncodeByteString writes a ByteString: a signed i32 length prefix followed
// by the raw bytes. b == nil encodes length -1 (null); a non-nil empty
// slice encodes length 0 (spec 4.2).
func EncodeByteString(w *Writer, b []byte) error {
	if b == nil {
		return EncodeInt32(w, -1)
	}
	if err := EncodeInt32(w, int32(len(b))); err != nil {
		return err
	}
	return w.Write(b)
}

// EncodeGuid writes data1 (u32 LE), data2 (u16 LE), data3 (u16 LE), data4
// (8 raw bytes).
func EncodeGuid(w *Writer, g Guid) error {
	if err := EncodeUInt32(w, g.Data1); err != nil {
		return err
	}
	if err := EncodeUInt16(w, g.Data2); err != nil {
		return err
	}
	if err := EncodeUInt16(w, g.Data3); err != nil {
		return err
	}
	return w.Write(g.Data4[:])
}

// --- Decoders ---------------------------------------------------------------

// DecodeBoolean reads a Boolean as a single byte; any nonzero byte is true.
func DecodeBoolean(r *Reader) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// DecodeSByte reads a signed 8-bit integer.
func DecodeSByte(r *Reader) (int8, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

// DecodeByte reads an unsigned 8-bit integer.
func DecodeByte(r *Reader) (uint8, error) {
	return r.ReadByte()
}

// DecodeInt16 reads a little-endian signed 16-bit integer, sign-extended.
func DecodeInt16(r *Reader) (int16, error) {
	v, err := DecodeUInt16(r)
	return int16(v), err
}

// DecodeUInt16 reads a little-endian unsigned 16-bit integer.
func DecodeUInt16(r *Reader) (uint16, error) {
	s, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(s), nil
}

// DecodeInt32 reads a little-endian signed 32-bit integer, sign-extended.
func DecodeInt32(r *Reader) (int32, error) {
	v, err := DecodeUInt32(r)
	return int32(v), err
}

// DecodeUInt32 reads a little-endian unsigned 32-bit integer.
func DecodeUInt32(r *Reader) (uint32, error) {
	s, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(s), nil
}

// DecodeInt64 reads a little-endian signed 64-bit integer.
func DecodeInt64(r *Reader) (int64, error) {
	v, err := DecodeUInt64(r)
	return int64(v), err
}

// DecodeUInt64 reads a little-endian unsigned 64-bit integer.
func DecodeUInt64(r *Reader) (uint64, error) {
	s, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(s), nil
}

// DecodeFloat reads an IEEE-754 single-precision float.
func DecodeFloat(r *Reader) (float32, error) {
	v, err := DecodeUInt32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// DecodeDouble reads an IEEE-754 double-precision float.
func DecodeDouble(r *Reader) (float64, error) {
	v, err := DecodeUInt64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// DecodeDateTime reads signed i64 100ns ticks since 1601-01-01 UTC.
func DecodeDateTime(r *Reader) (int64, error) {
	return DecodeInt64(r)
}

// decodeLength reads the shared i32 length prefix used by String and
// ByteString, rejecting negative lengths other than -1 and lengths over the
// bounded array-length budget. It does not check the remaining buffer; the
// caller's following read reports a length that overruns it.
func decodeLength(r *Reader, maxLen int) (int32, error) {
	n, err := DecodeInt32(r)
	if err != nil {
		return 0, err
	}
	if n < -1 {
		return 0, wrap(DecodingError, "negative length prefix %d", n)
	}
	if int(n) > maxLen {
		return 0, wrap(OutOfMemory, "length prefix %d exceeds configured maximum %d", n, maxLen)
	}
	return n, nil
}

// DecodeString reads a String/XmlElement. Length -1 decodes to a nil
// *string (null); length 0 decodes to a pointer to "" (empty, non-null).
func DecodeString(r *Reader, opts *CodecOptions) (*string, error) {
	o := opts.resolved()
	n, err := decodeLength(r, o.MaxArrayLength)
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	b, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// DecodeByteString reads a ByteString. Length -1 decodes to a nil slice
// (null); length 0 decodes to a non-nil empty slice (empty, non-null).
func DecodeByteString(r *Reader, opts *CodecOptions) ([]byte, error) {
	o := opts.resolved()
	n, err := decodeLength(r, o.MaxArrayLength)
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	b, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// DecodeGuid reads data1 (u32 LE), data2 (u16 LE), data3 (u16 LE), data4
// (8 raw bytes).
func DecodeGuid(r *Reader) (Guid, error) {
	var g Guid
	var err error
	if g.Data1, err = DecodeUInt32(r); err != nil {
		return g, err
	}
	if g.Data2, err = DecodeUInt16(r); err != nil {
		return g, err
	}
	if g.Data3, err = DecodeUInt16(r); err != nil {
		return g, err
	}
	b, err := r.take(8)
	if err != nil {
		return g, err
	}
	copy(g.Data4[:], b)
	return g, nil
}
