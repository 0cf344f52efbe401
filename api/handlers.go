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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/blinklabs-io/ghostpost/database"
	"github.com/blinklabs-io/ghostpost/forum"
	"github.com/blinklabs-io/ghostpost/verifier"
)

const apiVersion = "0.1.0"

// maxArtifactSize bounds proof artifact uploads.
const maxArtifactSize = 32 << 20

// writeJSON writes a JSON response with the given status
// code.
func writeJSON(
	w http.ResponseWriter,
	status int,
	v any,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,errchkjson
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(
	w http.ResponseWriter,
	status int,
	errStr string,
	message string,
) {
	writeJSON(w, status, ErrorResponse{
		StatusCode: status,
		Error:      errStr,
		Message:    message,
	})
}

// handleRoot handles GET / and returns API metadata.
func (a *Api) handleRoot(
	w http.ResponseWriter,
	_ *http.Request,
) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "ghostpost backend is running",
		Version: apiVersion,
	})
}

// handleHealth handles GET /health.
func (a *Api) handleHealth(
	w http.ResponseWriter,
	_ *http.Request,
) {
	writeJSON(w, http.StatusOK, HealthResponse{
		IsHealthy: true,
	})
}

// readArtifact extracts the proof artifact from the request. Both a
// multipart upload with a "receipt" file field and a raw binary body
// are accepted.
func readArtifact(r *http.Request) ([]byte, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxArtifactSize); err != nil {
			return nil, err
		}
		file, _, err := r.FormFile("receipt")
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(io.LimitReader(file, maxArtifactSize))
	}
	return io.ReadAll(io.LimitReader(r.Body, maxArtifactSize))
}

// handleSubmitProof handles POST /zk/submit-proof. The artifact is
// verified and, on success, the state transition is committed and its
// public outputs returned.
func (a *Api) handleSubmitProof(
	w http.ResponseWriter,
	r *http.Request,
) {
	artifact, err := readArtifact(r)
	if err != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"failed to read proof artifact",
		)
		return
	}
	if len(artifact) == 0 {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"Receipt Required",
		)
		return
	}
	result, err := a.node.SubmitProof(r.Context(), artifact)
	if err != nil {
		switch {
		case errors.Is(err, verifier.ErrMalformedJournal):
			writeError(
				w,
				http.StatusBadRequest,
				"Bad Request",
				"Malformed verifier output",
			)
		case errors.Is(err, verifier.ErrVerificationFailed):
			writeError(
				w,
				http.StatusBadRequest,
				"Bad Request",
				"Proof verification failed",
			)
		case errors.Is(err, database.ErrNonceUsed):
			writeError(
				w,
				http.StatusBadRequest,
				"Bad Request",
				"Old nonce already used",
			)
		default:
			// Internal detail stays in the server log
			a.logger.Error(
				"proof submission failed",
				"error", err,
			)
			writeError(
				w,
				http.StatusInternalServerError,
				"Internal Server Error",
				"failed to process proof submission",
			)
		}
		return
	}
	writeJSON(w, http.StatusOK, SubmitProofResponse{
		Message:    "Proof verified & stored.",
		NewTicket:  result.NewTicket,
		Commitment: result.Commitment,
		OldNonce:   result.OldNonce,
	})
}

// handleAllCallbacks handles GET /zk/all-callbacks and returns the
// ticket of every callback on the board, duplicates included.
func (a *Api) handleAllCallbacks(
	w http.ResponseWriter,
	_ *http.Request,
) {
	tickets, err := a.node.CallbackTickets()
	if err != nil {
		a.logger.Error(
			"failed to list callbacks",
			"error", err,
		)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to retrieve callbacks",
		)
		return
	}
	if tickets == nil {
		tickets = []string{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

// handleCommitments handles GET /zk/commitments and returns all
// accepted commitments.
func (a *Api) handleCommitments(
	w http.ResponseWriter,
	_ *http.Request,
) {
	commitments, err := a.node.Commitments()
	if err != nil {
		a.logger.Error(
			"failed to list commitments",
			"error", err,
		)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to retrieve commitments",
		)
		return
	}
	resp := make([]CommitmentResponse, 0, len(commitments))
	for _, item := range commitments {
		resp = append(resp, CommitmentResponse{
			CommitmentHash: item.CommitmentHash,
			Nonce:          item.Nonce,
			NewTicket:      item.NewTicket,
			CreatedAt:      item.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCreatePost handles POST /forum/post.
func (a *Api) handleCreatePost(
	w http.ResponseWriter,
	r *http.Request,
) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"invalid request body",
		)
		return
	}
	if req.Content == "" || req.Ticket == nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"Content and Ticket Required",
		)
		return
	}
	if _, err := a.node.CreatePost(
		req.Content,
		*req.Ticket,
	); err != nil {
		a.logger.Error(
			"failed to create post",
			"error", err,
		)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to create post",
		)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Post Created",
	})
}

// handlePosts handles GET /forum/posts and returns all posts, newest
// first.
func (a *Api) handlePosts(
	w http.ResponseWriter,
	_ *http.Request,
) {
	posts, err := a.node.Posts()
	if err != nil {
		a.logger.Error(
			"failed to list posts",
			"error", err,
		)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to retrieve posts",
		)
		return
	}
	resp := make([]PostResponse, 0, len(posts))
	for _, item := range posts {
		resp = append(resp, PostResponse{
			ID:        item.ID,
			Content:   item.Content,
			Timestamp: item.Timestamp,
			Ticket:    item.Ticket,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleDeletePost handles DELETE /forum/post/{id}: the post is
// removed and a ban callback is recorded for the supplied ticket.
func (a *Api) handleDeletePost(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"invalid post ID",
		)
		return
	}
	var req DeletePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"invalid request body",
		)
		return
	}
	if req.Ticket == "" {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"Ticket Required",
		)
		return
	}
	if err := a.node.DeletePost(uint(id), req.Ticket); err != nil {
		a.logger.Error(
			"failed to delete post",
			"error", err,
		)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to delete post",
		)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Post deleted & callback recorded.",
	})
}

// handleRegister handles POST /forum/register.
func (a *Api) handleRegister(
	w http.ResponseWriter,
	r *http.Request,
) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"invalid request body",
		)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"Username and Password Required",
		)
		return
	}
	if err := a.node.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, database.ErrUsernameExists) {
			writeError(
				w,
				http.StatusBadRequest,
				"Bad Request",
				"Username Already Exists",
			)
			return
		}
		a.logger.Error(
			"failed to register user",
			"error", err,
		)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to register user",
		)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Registered Successfully",
	})
}

// handleLogin handles POST /forum/login.
func (a *Api) handleLogin(
	w http.ResponseWriter,
	r *http.Request,
) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"invalid request body",
		)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"Username and Password Required",
		)
		return
	}
	if err := a.node.Login(req.Username, req.Password); err != nil {
		if errors.Is(err, forum.ErrInvalidCredentials) {
			writeError(
				w,
				http.StatusUnauthorized,
				"Unauthorized",
				"Invalid Credentials",
			)
			return
		}
		a.logger.Error(
			"failed to log in user",
			"error", err,
		)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to log in user",
		)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Login Success",
	})
}
