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
	"time"
)

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	IsHealthy bool `json:"is_healthy"`
}

// ErrorResponse is the error body for all endpoints.
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// MessageResponse is a plain success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SubmitProofResponse is returned by POST /zk/submit-proof on a
// committed transition.
type SubmitProofResponse struct {
	Message   string `json:"message"`
	NewTicket string `json:"new_ticket"`
	//nolint:tagliatelle
	Commitment string `json:"commitment"`
	OldNonce   string `json:"old_nonce"`
}

// CommitmentResponse represents one accepted commitment.
type CommitmentResponse struct {
	CommitmentHash string    `json:"commitment_hash"`
	Nonce          string    `json:"nonce"`
	NewTicket      string    `json:"new_ticket"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreatePostRequest is the body of POST /forum/post. Ticket is a
// pointer so a missing field can be told apart from an empty ticket
// string, which is accepted.
type CreatePostRequest struct {
	Content string  `json:"content"`
	Ticket  *string `json:"ticket"`
}

// PostResponse represents one post.
type PostResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Ticket    string    `json:"ticket"`
}

// DeletePostRequest is the body of DELETE /forum/post/{id}.
type DeletePostRequest struct {
	Ticket string `json:"ticket"`
}

// CredentialsRequest is the body of POST /forum/register and
// POST /forum/login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
