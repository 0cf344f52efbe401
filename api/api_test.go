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
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockNode implements ApiNode for testing.
type mockNode struct {
	proof          ProofInfo
	tickets        []string
	commitments    []CommitmentInfo
	posts          []PostInfo
	proofErr       error
	ticketsErr     error
	commitmentsErr error
	postsErr       error
	createErr      error
	deleteErr      error
	registerErr    error
	loginErr       error

	submittedArtifacts [][]byte
	deletedIDs         []uint
	deletedTickets     []string
}

func (m *mockNode) SubmitProof(
	_ context.Context,
	artifact []byte,
) (ProofInfo, error) {
	m.submittedArtifacts = append(m.submittedArtifacts, artifact)
	return m.proof, m.proofErr
}

func (m *mockNode) CallbackTickets() ([]string, error) {
	return m.tickets, m.ticketsErr
}

func (m *mockNode) Commitments() ([]CommitmentInfo, error) {
	return m.commitments, m.commitmentsErr
}

func (m *mockNode) CreatePost(
	content string,
	ticket string,
) (PostInfo, error) {
	if m.createErr != nil {
		return PostInfo{}, m.createErr
	}
	return PostInfo{
		ID:        1,
		Content:   content,
		Timestamp: time.Now(),
		Ticket:    ticket,
	}, nil
}

func (m *mockNode) Posts() ([]PostInfo, error) {
	return m.posts, m.postsErr
}

func (m *mockNode) DeletePost(id uint, ticket string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	m.deletedTickets = append(m.deletedTickets, ticket)
	return m.deleteErr
}

func (m *mockNode) Register(string, string) error {
	return m.registerErr
}

func (m *mockNode) Login(string, string) error {
	return m.loginErr
}

func newTestApi(
	node ApiNode,
) *Api {
	return New(
		ApiConfig{
			ListenAddress: ":0",
		},
		node,
		slog.Default(),
	)
}

func TestStartStop(t *testing.T) {
	mock := &mockNode{}
	a := newTestApi(mock)

	err := a.Start(t.Context())
	require.NoError(t, err)

	// Verify server is running
	a.mu.Lock()
	assert.NotNil(t, a.httpServer)
	a.mu.Unlock()

	// Stop the server
	stopCtx, stopCancel := context.WithTimeout(
		context.Background(),
		5*time.Second,
	)
	defer stopCancel()
	err = a.Stop(stopCtx)
	require.NoError(t, err)

	// Verify server is stopped
	a.mu.Lock()
	assert.Nil(t, a.httpServer)
	a.mu.Unlock()
}

func TestStartAlreadyStarted(t *testing.T) {
	mock := &mockNode{}
	a := newTestApi(mock)

	ctx := t.Context()
	err := a.Start(ctx)
	require.NoError(t, err)
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(
			context.Background(),
			5*time.Second,
		)
		defer stopCancel()
		_ = a.Stop(stopCtx)
	}()

	// Starting again should error
	err = a.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already started")
}

func TestHandleRoot(t *testing.T) {
	mock := &mockNode{}
	a := newTestApi(mock)

	req := httptest.NewRequest(
		http.MethodGet, "/", nil,
	)
	w := httptest.NewRecorder()
	a.handleRoot(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(
		t,
		"application/json",
		w.Header().Get("Content-Type"),
	)

	var resp RootResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.Equal(t, apiVersion, resp.Version)
}

func TestHandleHealth(t *testing.T) {
	mock := &mockNode{}
	a := newTestApi(mock)

	req := httptest.NewRequest(
		http.MethodGet, "/health", nil,
	)
	w := httptest.NewRecorder()
	a.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.True(t, resp.IsHealthy)
}
