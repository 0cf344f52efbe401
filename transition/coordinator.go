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

// Package transition implements the commitment state-transition
// coordinator. A submission moves through
// Received -> Verifying -> {Rejected | NonceReused | Committed}:
// the proof artifact is handed to the verifier adapter outside any
// database transaction, and on success the nonce-freshness check and
// commitment insert happen atomically.
package transition

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/blinklabs-io/ghostpost/database"
	"github.com/blinklabs-io/ghostpost/event"
	"github.com/blinklabs-io/ghostpost/verifier"
	"github.com/prometheus/client_golang/prometheus"
)

// Terminal outcomes of a proof submission, used as metric labels.
const (
	outcomeCommitted  = "committed"
	outcomeRejected   = "rejected"
	outcomeMalformed  = "malformed"
	outcomeNonceReuse = "nonce_reused"
	outcomeError      = "error"
)

// Result carries the public outputs returned to the client after a
// committed transition.
type Result struct {
	// NewTicket is the ticket published by this transition.
	NewTicket string
	// Commitment is the commitment hash as lowercase hex.
	Commitment string
	// OldNonce is the consumed nonce in canonical string form.
	OldNonce string
}

// CoordinatorConfig describes a Coordinator.
type CoordinatorConfig struct {
	Logger       *slog.Logger
	Database     *database.Database
	Verifier     verifier.Verifier
	EventBus     *event.EventBus
	PromRegistry prometheus.Registerer
}

// Coordinator orchestrates proof verification and the atomic
// commitment of accepted state transitions.
type Coordinator struct {
	logger   *slog.Logger
	db       *database.Database
	verifier verifier.Verifier
	eventBus *event.EventBus
	metrics  *coordinatorMetrics
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(cfg CoordinatorConfig) (*Coordinator, error) {
	if cfg.Database == nil {
		return nil, errors.New("no database provided")
	}
	if cfg.Verifier == nil {
		return nil, errors.New("no verifier provided")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	logger = logger.With("component", "transition")
	c := &Coordinator{
		logger:   logger,
		db:       cfg.Database,
		verifier: cfg.Verifier,
		eventBus: cfg.EventBus,
	}
	if cfg.PromRegistry != nil {
		c.initMetrics(cfg.PromRegistry)
	}
	return c, nil
}

// SubmitProof runs one proof artifact through the state machine. The
// error is one of the verifier sentinels (rejection, malformed
// journal), database.ErrNonceUsed on replay, or a storage/internal
// error; no store mutation happens on any error path.
func (c *Coordinator) SubmitProof(
	ctx context.Context,
	artifact []byte,
) (*Result, error) {
	journal, err := c.verifier.Verify(ctx, artifact)
	if err != nil {
		switch {
		case errors.Is(err, verifier.ErrMalformedJournal):
			c.observe(outcomeMalformed)
		case errors.Is(err, verifier.ErrVerificationFailed):
			c.observe(outcomeRejected)
			c.logger.Info(
				"proof rejected by verifier",
				"error", err,
			)
		default:
			c.observe(outcomeError)
			c.logger.Error(
				"verifier adapter failure",
				"error", err,
			)
		}
		return nil, err
	}

	commitmentHex := journal.CommitmentHex()
	_, err = c.db.CommitmentCreate(
		commitmentHex,
		journal.OldNonce,
		journal.NewTicket,
	)
	if err != nil {
		if errors.Is(err, database.ErrNonceUsed) {
			c.observe(outcomeNonceReuse)
			// Potential replay attempt
			c.logger.Warn(
				"nonce reuse rejected",
				"old_nonce", journal.OldNonce,
			)
			return nil, err
		}
		c.observe(outcomeError)
		c.logger.Error(
			"failed to store commitment",
			"error", err,
		)
		return nil, err
	}

	c.observe(outcomeCommitted)
	c.logger.Info(
		"state transition committed",
		"commitment", commitmentHex,
		"new_ticket", journal.NewTicket,
	)
	if c.eventBus != nil {
		c.eventBus.Publish(
			event.CommitmentAcceptedEventType,
			event.CommitmentAcceptedEvent{
				CommitmentHash: commitmentHex,
				OldNonce:       journal.OldNonce,
				NewTicket:      journal.NewTicket,
			},
		)
	}
	return &Result{
		NewTicket:  journal.NewTicket,
		Commitment: commitmentHex,
		OldNonce:   journal.OldNonce,
	}, nil
}

type coordinatorMetrics struct {
	submissions *prometheus.CounterVec
}

func (c *Coordinator) initMetrics(
	promRegistry prometheus.Registerer,
) {
	c.metrics = &coordinatorMetrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ghostpost_proof_submissions_total",
				Help: "total proof submissions by terminal outcome",
			},
			[]string{"outcome"},
		),
	}
	promRegistry.MustRegister(c.metrics.submissions)
}

func (c *Coordinator) observe(outcome string) {
	if c.metrics != nil {
		c.metrics.submissions.WithLabelValues(outcome).Inc()
	}
}
