// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package pubsub

import (
	"fmt"

	"go.mozilla.org/pkcs7"

	"github.com/opcua-pubsub/codec"
)

const (
	securityFlagsNetworkMessageSignedFlag    byte = 0x01
	securityFlagsNetworkMessageEncryptedFlag byte = 0x02
	securityFlagsFooterFlag                  byte = 0x04
	securityFlagsKeySetFlag                  byte = 0x08
)

// SecurityHeader is the PubSub security footer: a token id naming the key
// set in use, a sequence counter for replay detection, and the signature
// bytes themselves, carried as a PKCS#7 SignedData envelope the same way
// the teacher's Authenticode check verifies a PE's embedded certificate.
type SecurityHeader struct {
	SecurityTokenID     uint32
	SequenceNumber      uint32
	SigningEnabled      bool
	EncryptionEnabled   bool
	HasFooter           bool
	HasKeySet           bool
	MessageNonce        []byte
	SignedData          []byte // PKCS#7 SignedData envelope wrapping the footer bytes
}

func (s *SecurityHeader) flags() byte {
	var f byte
	if s.SigningEnabled {
		f |= securityFlagsNetworkMessageSignedFlag
	}
	if s.EncryptionEnabled {
		f |= securityFlagsNetworkMessageEncryptedFlag
	}
	if s.HasFooter {
		f |= securityFlagsFooterFlag
	}
	if s.HasKeySet {
		f |= securityFlagsKeySetFlag
	}
	return f
}

// EncodeSecurityHeader writes the security flags byte, the token id, the
// sequence number, and the nonce (length-prefixed as a ByteString).
func EncodeSecurityHeader(w *ua.Writer, s *SecurityHeader) error {
	if err := w.WriteByte(s.flags()); err != nil {
		return err
	}
	if err := ua.EncodeUInt32(w, s.SecurityTokenID); err != nil {
		return err
	}
	if err := ua.EncodeUInt32(w, s.SequenceNumber); err != nil {
		return err
	}
	return ua.EncodeByteString(w, s.MessageNonce)
}

// DecodeSecurityHeader reads the fields EncodeSecurityHeader writes.
// SignedData is left empty: the caller sets it from the trailing footer
// bytes it slices out of the full NetworkMessage buffer (the footer's
// length is transport-framed, not self-describing) before calling
// VerifySignature.
func DecodeSecurityHeader(r *ua.Reader) (*SecurityHeader, error) {
	flags, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	tokenID, err := ua.DecodeUInt32(r)
	if err != nil {
		return nil, err
	}
	seq, err := ua.DecodeUInt32(r)
	if err != nil {
		return nil, err
	}
	nonce, err := ua.DecodeByteString(r, nil)
	if err != nil {
		return nil, err
	}
	return &SecurityHeader{
		SecurityTokenID:   tokenID,
		SequenceNumber:    seq,
		SigningEnabled:    flags&securityFlagsNetworkMessageSignedFlag != 0,
		EncryptionEnabled: flags&securityFlagsNetworkMessageEncryptedFlag != 0,
		HasFooter:         flags&securityFlagsFooterFlag != 0,
		HasKeySet:         flags&securityFlagsKeySetFlag != 0,
		MessageNonce:      nonce,
	}, nil
}

// VerifySignature parses s.SignedData as a PKCS#7 SignedData envelope and
// verifies it covers payload exactly, returning the signer certificate's
// raw bytes on success. Used when SigningEnabled is set and a subscriber
// wants to authenticate a NetworkMessage before trusting its payload.
func (s *SecurityHeader) VerifySignature(payload []byte) ([]byte, error) {
	if !s.SigningEnabled {
		return nil, nil
	}
	p7, err := pkcs7.Parse(s.SignedData)
	if err != nil {
		return nil, &ua.StatusError{Status: ua.DecodingError, Reason: fmt.Sprintf("parsing PKCS#7 security footer: %v", err)}
	}
	p7.Content = payload
	if err := p7.Verify(); err != nil {
		return nil, &ua.StatusError{Status: ua.DecodingError, Reason: fmt.Sprintf("verifying PKCS#7 security footer: %v", err)}
	}
	if len(p7.Certificates) == 0 {
		return nil, &ua.StatusError{Status: ua.DecodingError, Reason: "PKCS#7 security footer carries no signer certificate"}
	}
	return p7.Certificates[0].Raw, nil
}
