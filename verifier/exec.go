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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single verifier invocation.
const DefaultTimeout = 60 * time.Second

// ExecVerifierConfig describes an ExecVerifier.
type ExecVerifierConfig struct {
	// Logger is used for verifier log output. Defaults to discarding
	// log output.
	Logger *slog.Logger
	// Command is the path to the external verifier binary.
	Command string
	// WorkDir is the parent directory for per-submission scratch
	// directories. Defaults to the system temp directory.
	WorkDir string
	// Env is appended to the process environment for each invocation.
	Env []string
	// Timeout bounds the wall-clock runtime of one invocation.
	// Defaults to DefaultTimeout.
	Timeout time.Duration
}

// ExecVerifier invokes the external verifier process with a proof
// artifact written to a per-submission scratch directory. The
// directory is unique per invocation so concurrent submissions never
// collide, and it is removed on every exit path.
type ExecVerifier struct {
	config ExecVerifierConfig
	logger *slog.Logger
}

// NewExecVerifier creates an ExecVerifier.
func NewExecVerifier(cfg ExecVerifierConfig) (*ExecVerifier, error) {
	if cfg.Command == "" {
		return nil, errors.New("no verifier command configured")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	logger = logger.With("component", "verifier")
	return &ExecVerifier{
		config: cfg,
		logger: logger,
	}, nil
}

// Verify runs the external verifier against the given artifact. A
// caller's cancellation is deliberately not propagated: a disconnected
// client must not abort an in-flight verification, which either
// finishes or is killed at the timeout. Partial results are never
// returned.
func (v *ExecVerifier) Verify(
	ctx context.Context,
	artifact []byte,
) (*Journal, error) {
	scratchDir, err := os.MkdirTemp(
		v.config.WorkDir,
		"ghostpost-receipt-",
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to create scratch dir: %w",
			err,
		)
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			v.logger.Warn(
				"failed to remove verifier scratch dir",
				"dir", scratchDir,
				"error", err,
			)
		}
	}()
	artifactPath := filepath.Join(
		scratchDir,
		"receipt-"+uuid.NewString()+".bin",
	)
	if err := os.WriteFile(artifactPath, artifact, 0o600); err != nil {
		return nil, fmt.Errorf(
			"failed to write proof artifact: %w",
			err,
		)
	}

	execCtx, cancel := context.WithTimeout(
		context.WithoutCancel(ctx),
		v.config.Timeout,
	)
	defer cancel()
	cmd := exec.CommandContext(
		execCtx,
		v.config.Command,
		"--receipt",
		artifactPath,
	)
	cmd.Env = append(os.Environ(), v.config.Env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)
	if runErr != nil {
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			v.logger.Warn(
				"verifier timed out",
				"timeout", v.config.Timeout,
			)
			return nil, fmt.Errorf(
				"%w: timed out after %s",
				ErrVerificationFailed,
				v.config.Timeout,
			)
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			v.logger.Info(
				"verifier rejected proof",
				"exit_code", exitErr.ExitCode(),
				"stderr", stderr.String(),
			)
			return nil, fmt.Errorf(
				"%w: verifier exited with code %d",
				ErrVerificationFailed,
				exitErr.ExitCode(),
			)
		}
		return nil, fmt.Errorf(
			"failed to run verifier: %w",
			runErr,
		)
	}
	v.logger.Debug(
		"verifier accepted proof",
		"duration", elapsed,
	)
	journal, err := parseJournal(stdout.Bytes())
	if err != nil {
		v.logger.Error(
			"verifier output could not be parsed",
			"error", err,
		)
		return nil, err
	}
	return journal, nil
}

// parseJournal extracts the journal from verifier output. The
// contract is that the last non-empty line of stdout is a JSON
// journal object; anything before it is informational.
func parseJournal(output []byte) (*Journal, error) {
	lines := strings.Split(string(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		var journal Journal
		if err := json.Unmarshal([]byte(line), &journal); err != nil {
			return nil, fmt.Errorf(
				"%w: %s",
				ErrMalformedJournal,
				err,
			)
		}
		return &journal, nil
	}
	return nil, fmt.Errorf("%w: empty output", ErrMalformedJournal)
}
