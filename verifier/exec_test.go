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
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script verifier stand-in requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "verify.sh")
	err := os.WriteFile(
		path,
		[]byte("#!/bin/sh\n"+body),
		0o755,
	)
	require.NoError(t, err)
	return path
}

func newTestExecVerifier(
	t *testing.T,
	cfg ExecVerifierConfig,
) (*ExecVerifier, string) {
	t.Helper()
	workDir := t.TempDir()
	cfg.WorkDir = workDir
	v, err := NewExecVerifier(cfg)
	require.NoError(t, err)
	return v, workDir
}

// assertScratchRemoved verifies no per-submission scratch dirs were
// left behind.
func assertScratchRemoved(t *testing.T, workDir string) {
	t.Helper()
	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewExecVerifierNoCommand(t *testing.T) {
	_, err := NewExecVerifier(ExecVerifierConfig{})
	require.Error(t, err)
}

func TestExecVerifySuccess(t *testing.T) {
	script := writeScript(
		t,
		`test "$1" = "--receipt" || exit 2
test -f "$2" || exit 2
echo "Proof verified successfully!"
echo '{"old_nonce":"n1","new_commitment":[18,52],"new_ticket":"tk1"}'
`,
	)
	v, workDir := newTestExecVerifier(t, ExecVerifierConfig{
		Command: script,
	})

	journal, err := v.Verify(context.Background(), []byte("artifact"))
	require.NoError(t, err)
	assert.Equal(t, "n1", journal.OldNonce)
	assert.Equal(t, "1234", journal.CommitmentHex())
	assert.Equal(t, "tk1", journal.NewTicket)
	assertScratchRemoved(t, workDir)
}

func TestExecVerifyRejected(t *testing.T) {
	script := writeScript(t, "exit 1\n")
	v, workDir := newTestExecVerifier(t, ExecVerifierConfig{
		Command: script,
	})

	_, err := v.Verify(context.Background(), []byte("artifact"))
	require.ErrorIs(t, err, ErrVerificationFailed)
	assert.NotErrorIs(t, err, ErrMalformedJournal)
	assertScratchRemoved(t, workDir)
}

func TestExecVerifyMalformedOutput(t *testing.T) {
	script := writeScript(t, "echo 'this is not a journal'\n")
	v, workDir := newTestExecVerifier(t, ExecVerifierConfig{
		Command: script,
	})

	_, err := v.Verify(context.Background(), []byte("artifact"))
	require.ErrorIs(t, err, ErrMalformedJournal)
	assert.NotErrorIs(t, err, ErrVerificationFailed)
	assertScratchRemoved(t, workDir)
}

func TestExecVerifyTimeout(t *testing.T) {
	script := writeScript(t, "sleep 10\n")
	v, workDir := newTestExecVerifier(t, ExecVerifierConfig{
		Command: script,
		Timeout: 100 * time.Millisecond,
	})

	_, err := v.Verify(context.Background(), []byte("artifact"))
	require.ErrorIs(t, err, ErrVerificationFailed)
	assertScratchRemoved(t, workDir)
}

func TestExecVerifyIgnoresCallerCancellation(t *testing.T) {
	// A disconnected client must not abort verification in flight
	script := writeScript(
		t,
		`echo '{"old_nonce":"n1","new_commitment":[1],"new_ticket":"tk1"}'
`,
	)
	v, _ := newTestExecVerifier(t, ExecVerifierConfig{
		Command: script,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	journal, err := v.Verify(ctx, []byte("artifact"))
	require.NoError(t, err)
	assert.Equal(t, "n1", journal.OldNonce)
}

func TestExecVerifyEnvPassed(t *testing.T) {
	script := writeScript(
		t,
		`echo "{\"old_nonce\":\"$GHOSTPOST_TEST_NONCE\",\"new_commitment\":[1],\"new_ticket\":\"tk1\"}"
`,
	)
	v, _ := newTestExecVerifier(t, ExecVerifierConfig{
		Command: script,
		Env:     []string{"GHOSTPOST_TEST_NONCE=n42"},
	})

	journal, err := v.Verify(context.Background(), []byte("artifact"))
	require.NoError(t, err)
	assert.Equal(t, "n42", journal.OldNonce)
}
