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

package ghostpost

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/blinklabs-io/ghostpost/api"
	"github.com/blinklabs-io/ghostpost/database"
	"github.com/blinklabs-io/ghostpost/event"
	"github.com/blinklabs-io/ghostpost/forum"
	"github.com/blinklabs-io/ghostpost/transition"
	"github.com/blinklabs-io/ghostpost/verifier"
)

type Node struct {
	db            *database.Database
	eventBus      *event.EventBus
	verifier      verifier.Verifier
	coordinator   *transition.Coordinator
	forum         *forum.Forum
	api           *api.Api
	shutdownFuncs []func(context.Context) error
	config        Config
	done          chan struct{}
	shutdownOnce  sync.Once
}

func New(cfg Config) (*Node, error) {
	eventBus := event.NewEventBus(cfg.promRegistry)
	n := &Node{
		config:   cfg,
		eventBus: eventBus,
		done:     make(chan struct{}),
	}
	if err := n.configValidate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return n, nil
}

func (n *Node) Run() error {
	// Configure tracing
	if n.config.tracing {
		if err := n.setupTracing(); err != nil {
			return err
		}
	}
	// Load database
	db, err := database.New(
		&database.Config{
			Logger:  n.config.logger,
			DataDir: n.config.dataDir,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	n.db = db
	// Configure verifier adapter
	n.verifier = n.config.verifier
	if n.verifier == nil {
		execVerifier, err := verifier.NewExecVerifier(
			verifier.ExecVerifierConfig{
				Logger:  n.config.logger,
				Command: n.config.verifierCommand,
				WorkDir: n.config.verifierWorkDir,
				Env:     n.config.verifierEnv,
				Timeout: n.config.verifierTimeout,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to create verifier: %w", err)
		}
		n.verifier = execVerifier
	}
	// Configure transition coordinator
	coordinator, err := transition.NewCoordinator(
		transition.CoordinatorConfig{
			Logger:       n.config.logger,
			Database:     n.db,
			Verifier:     n.verifier,
			EventBus:     n.eventBus,
			PromRegistry: n.config.promRegistry,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create coordinator: %w", err)
	}
	n.coordinator = coordinator
	// Configure forum
	f, err := forum.New(
		forum.ForumConfig{
			Logger:   n.config.logger,
			Database: n.db,
			EventBus: n.eventBus,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create forum: %w", err)
	}
	n.forum = f
	// Log accepted commitments at the node level
	n.eventBus.SubscribeFunc(
		event.CommitmentAcceptedEventType,
		n.handleCommitmentAcceptedEvent,
	)
	// Start API server
	n.api = api.New(
		api.ApiConfig{
			ListenAddress: n.config.apiListenAddress,
		},
		api.NewNodeAdapter(n.coordinator, n.forum, n.db),
		n.config.logger,
	)
	if err := n.api.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	n.config.logger.Info(
		"ghostpost backend started",
		"listen_address", n.config.apiListenAddress,
		"component", "node",
	)

	// Wait for shutdown signal
	<-n.done
	return nil
}

func (n *Node) handleCommitmentAcceptedEvent(evt event.Event) {
	e, ok := evt.Data.(event.CommitmentAcceptedEvent)
	if !ok {
		return
	}
	n.config.logger.Info(
		"commitment accepted",
		"commitment", e.CommitmentHash,
		"new_ticket", e.NewTicket,
		"component", "node",
	)
}

func (n *Node) Stop() error {
	var err error
	n.shutdownOnce.Do(func() {
		err = n.shutdown()
	})
	return err
}

func (n *Node) shutdown() error {
	// Create shutdown context with timeout (default 30s if not configured)
	shutdownTimeout := 30 * time.Second
	if n.config.shutdownTimeout > 0 {
		shutdownTimeout = n.config.shutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error

	n.config.logger.Debug("starting graceful shutdown")

	// Stop accepting new requests
	if n.api != nil {
		if stopErr := n.api.Stop(ctx); stopErr != nil {
			err = errors.Join(err, fmt.Errorf("api shutdown: %w", stopErr))
		}
	}

	// Close database
	if n.db != nil {
		if closeErr := n.db.Close(); closeErr != nil {
			err = errors.Join(
				err,
				fmt.Errorf("database close: %w", closeErr),
			)
		}
	}

	// Call registered shutdown functions
	for _, fn := range n.shutdownFuncs {
		if fnErr := fn(ctx); fnErr != nil {
			err = errors.Join(err, fmt.Errorf("shutdown function: %w", fnErr))
		}
	}
	n.shutdownFuncs = nil

	n.config.logger.Debug("graceful shutdown complete")
	close(n.done)
	return err
}
