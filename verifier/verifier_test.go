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

package verifier

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalUnmarshal(t *testing.T) {
	var journal Journal
	err := json.Unmarshal(
		[]byte(
			`{"old_nonce":"n1","new_commitment":[18,52],"new_ticket":"tk1"}`,
		),
		&journal,
	)
	require.NoError(t, err)
	assert.Equal(t, "n1", journal.OldNonce)
	assert.Equal(t, []byte{0x12, 0x34}, journal.NewCommitment)
	assert.Equal(t, "tk1", journal.NewTicket)
}

func TestJournalUnmarshalIntegerNonce(t *testing.T) {
	var journal Journal
	// u128-scale nonces must survive without float precision loss
	err := json.Unmarshal(
		[]byte(
			`{"old_nonce":340282366920938463463374607431768211455,"new_commitment":[0],"new_ticket":"tk1"}`,
		),
		&journal,
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"340282366920938463463374607431768211455",
		journal.OldNonce,
	)
}

func TestJournalUnmarshalMissingNonce(t *testing.T) {
	var journal Journal
	err := json.Unmarshal(
		[]byte(`{"new_commitment":[1],"new_ticket":"tk1"}`),
		&journal,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "old_nonce")
}

func TestJournalUnmarshalMissingCommitment(t *testing.T) {
	var journal Journal
	err := json.Unmarshal(
		[]byte(`{"old_nonce":"n1","new_ticket":"tk1"}`),
		&journal,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "new_commitment")
}

func TestJournalUnmarshalByteRange(t *testing.T) {
	var journal Journal
	err := json.Unmarshal(
		[]byte(
			`{"old_nonce":"n1","new_commitment":[256],"new_ticket":"tk1"}`,
		),
		&journal,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of byte range")
}

func TestCommitmentHex(t *testing.T) {
	journal := Journal{
		NewCommitment: []byte{0x0a, 0xff},
	}
	assert.Equal(t, "0aff", journal.CommitmentHex())

	// Round trip back to the exact original bytes
	decoded, err := hex.DecodeString(journal.CommitmentHex())
	require.NoError(t, err)
	assert.Equal(t, journal.NewCommitment, decoded)
}

func TestParseJournalLastNonEmptyLine(t *testing.T) {
	output := "Proof verified successfully!\n" +
		`{"old_nonce":"n1","new_commitment":[18,52],"new_ticket":"tk1"}` +
		"\n\n"
	journal, err := parseJournal([]byte(output))
	require.NoError(t, err)
	assert.Equal(t, "n1", journal.OldNonce)
	assert.Equal(t, "1234", journal.CommitmentHex())
}

func TestParseJournalMalformed(t *testing.T) {
	_, err := parseJournal([]byte("some log line\nnot json\n"))
	require.ErrorIs(t, err, ErrMalformedJournal)
	assert.NotErrorIs(t, err, ErrVerificationFailed)
}

func TestParseJournalEmpty(t *testing.T) {
	_, err := parseJournal([]byte("\n\n"))
	require.ErrorIs(t, err, ErrMalformedJournal)
}
