// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package verifier adapts an external zero-knowledge proof verifier
// process as a capability interface. The verifier itself is opaque: it
// consumes a proof artifact and either rejects it or emits a journal
// with the public outputs of the proven state transition.
package verifier

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrVerificationFailed indicates the external verifier rejected the
// proof artifact (non-zero exit or timeout). This is a normal rejected
// outcome, not an internal error.
var ErrVerificationFailed = errors.New("proof verification failed")

// ErrMalformedJournal indicates the verifier exited successfully but
// its output could not be parsed as a journal. Kept distinct from
// ErrVerificationFailed so cryptographic rejection and a broken
// verifier contract are never conflated.
var ErrMalformedJournal = errors.New("malformed verifier journal")

// Journal is the structured public output of a successful proof
// verification.
type Journal struct {
	// OldNonce is the single-use nonce consumed by this transition, in
	// canonical decimal string form.
	OldNonce string
	// NewCommitment is the raw commitment hash bytes.
	NewCommitment []byte
	// NewTicket is the ticket published by this transition.
	NewTicket string
}

// journalWire mirrors the JSON emitted by the verifier. old_nonce may
// be either a string or an integer; new_commitment is an array of byte
// values (encoding/json would base64 a []byte, so it is decoded by
// hand).
type journalWire struct {
	OldNonce      json.RawMessage `json:"old_nonce"`
	NewCommitment []int           `json:"new_commitment"`
	NewTicket     string          `json:"new_ticket"`
}

func (j *Journal) UnmarshalJSON(data []byte) error {
	var wire journalWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire.OldNonce) == 0 {
		return errors.New("missing old_nonce")
	}
	var nonce string
	if err := json.Unmarshal(wire.OldNonce, &nonce); err != nil {
		// Not a string; accept an integer and keep its exact decimal
		// text to avoid float precision loss on large nonces
		var num json.Number
		if err := json.Unmarshal(wire.OldNonce, &num); err != nil {
			return fmt.Errorf("invalid old_nonce: %w", err)
		}
		nonce = num.String()
	}
	if wire.NewCommitment == nil {
		return errors.New("missing new_commitment")
	}
	commitment := make([]byte, len(wire.NewCommitment))
	for i, v := range wire.NewCommitment {
		if v < 0 || v > 255 {
			return fmt.Errorf(
				"new_commitment[%d] out of byte range: %d",
				i,
				v,
			)
		}
		commitment[i] = byte(v)
	}
	j.OldNonce = nonce
	j.NewCommitment = commitment
	j.NewTicket = wire.NewTicket
	return nil
}

// CommitmentHex returns the commitment hash as lowercase hex, two
// digits per byte in array order. This encoding is byte-exact for
// interoperability with clients reproducing the hash independently.
func (j *Journal) CommitmentHex() string {
	return hex.EncodeToString(j.NewCommitment)
}

// Verifier is the capability interface over proof verification. The
// production implementation shells out to the external verifier
// process; tests use a stub returning canned journals.
type Verifier interface {
	Verify(ctx context.Context, artifact []byte) (*Journal, error)
}
