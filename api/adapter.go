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

	"github.com/blinklabs-io/ghostpost/database"
	"github.com/blinklabs-io/ghostpost/forum"
	"github.com/blinklabs-io/ghostpost/transition"
)

// NodeAdapter wraps the transition coordinator, the forum, and the
// database to implement the ApiNode interface.
type NodeAdapter struct {
	coordinator *transition.Coordinator
	forum       *forum.Forum
	db          *database.Database
}

// NewNodeAdapter creates a NodeAdapter. Panics if any dependency is
// nil.
func NewNodeAdapter(
	coordinator *transition.Coordinator,
	f *forum.Forum,
	db *database.Database,
) *NodeAdapter {
	if coordinator == nil || f == nil || db == nil {
		panic("NewNodeAdapter: all dependencies must be non-nil")
	}
	return &NodeAdapter{
		coordinator: coordinator,
		forum:       f,
		db:          db,
	}
}

// SubmitProof runs the artifact through the transition coordinator.
func (n *NodeAdapter) SubmitProof(
	ctx context.Context,
	artifact []byte,
) (ProofInfo, error) {
	result, err := n.coordinator.SubmitProof(ctx, artifact)
	if err != nil {
		return ProofInfo{}, err
	}
	return ProofInfo{
		NewTicket:  result.NewTicket,
		Commitment: result.Commitment,
		OldNonce:   result.OldNonce,
	}, nil
}

// CallbackTickets returns every ticket on the callback board.
func (n *NodeAdapter) CallbackTickets() ([]string, error) {
	return n.forum.CallbackTickets()
}

// Commitments returns all accepted commitments.
func (n *NodeAdapter) Commitments() ([]CommitmentInfo, error) {
	items, err := n.db.Commitments()
	if err != nil {
		return nil, err
	}
	ret := make([]CommitmentInfo, 0, len(items))
	for _, item := range items {
		ret = append(ret, CommitmentInfo{
			CommitmentHash: item.CommitmentHash,
			Nonce:          item.Nonce,
			NewTicket:      item.NewTicket,
			CreatedAt:      item.CreatedAt,
		})
	}
	return ret, nil
}

// CreatePost stores a new post.
func (n *NodeAdapter) CreatePost(
	content string,
	ticket string,
) (PostInfo, error) {
	post, err := n.forum.CreatePost(content, ticket)
	if err != nil {
		return PostInfo{}, err
	}
	return PostInfo{
		ID:        post.ID,
		Content:   post.Content,
		Timestamp: post.Timestamp,
		Ticket:    post.Ticket,
	}, nil
}

// Posts returns all posts, newest first.
func (n *NodeAdapter) Posts() ([]PostInfo, error) {
	items, err := n.forum.Posts()
	if err != nil {
		return nil, err
	}
	ret := make([]PostInfo, 0, len(items))
	for _, item := range items {
		ret = append(ret, PostInfo{
			ID:        item.ID,
			Content:   item.Content,
			Timestamp: item.Timestamp,
			Ticket:    item.Ticket,
		})
	}
	return ret, nil
}

// DeletePost retracts a post and records a ban callback.
func (n *NodeAdapter) DeletePost(id uint, ticket string) error {
	return n.forum.DeletePost(id, ticket)
}

// Register creates a user account.
func (n *NodeAdapter) Register(
	username string,
	password string,
) error {
	return n.forum.Register(username, password)
}

// Login validates account credentials.
func (n *NodeAdapter) Login(
	username string,
	password string,
) error {
	return n.forum.Login(username, password)
}
