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

package api

import (
	"context"
	"time"
)

// ApiNode is the interface that the API server uses to reach the
// transition coordinator and the forum. This decouples the HTTP
// server from the concrete Node struct and enables testing with mock
// implementations.
type ApiNode interface {
	// SubmitProof runs a proof artifact through the transition
	// coordinator.
	SubmitProof(
		ctx context.Context,
		artifact []byte,
	) (ProofInfo, error)

	// CallbackTickets returns every ticket on the callback board.
	CallbackTickets() ([]string, error)

	// Commitments returns all accepted commitments.
	Commitments() ([]CommitmentInfo, error)

	// CreatePost stores a new post.
	CreatePost(content string, ticket string) (PostInfo, error)

	// Posts returns all posts, newest first.
	Posts() ([]PostInfo, error)

	// DeletePost retracts a post and records a ban callback.
	DeletePost(id uint, ticket string) error

	// Register creates a user account.
	Register(username string, password string) error

	// Login validates account credentials.
	Login(username string, password string) error
}

// ProofInfo holds the public outputs of a committed transition.
type ProofInfo struct {
	NewTicket  string
	Commitment string
	OldNonce   string
}

// CommitmentInfo holds commitment data needed by the API.
type CommitmentInfo struct {
	CommitmentHash string
	Nonce          string
	NewTicket      string
	CreatedAt      time.Time
}

// PostInfo holds post data needed by the API.
type PostInfo struct {
	ID        uint
	Content   string
	Timestamp time.Time
	Ticket    string
}
