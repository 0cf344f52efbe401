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

// Package forum implements content submission and retraction plus
// user accounts. Posting requires a ticket but the ticket is not
// cross-checked against the commitment ledger; auditors correlate the
// public boards instead. Retraction removes the post and records a
// ban callback for its ticket in a single transaction.
package forum

import (
	"errors"
	"io"
	"log/slog"

	"github.com/blinklabs-io/ghostpost/database"
	"github.com/blinklabs-io/ghostpost/database/models"
	"github.com/blinklabs-io/ghostpost/event"
)

// ErrInvalidCredentials is returned when login credentials do not
// match a registered user.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ForumConfig describes a Forum.
type ForumConfig struct {
	Logger   *slog.Logger
	Database *database.Database
	EventBus *event.EventBus
}

// Forum provides post and account operations over the database.
type Forum struct {
	logger   *slog.Logger
	db       *database.Database
	eventBus *event.EventBus
}

// New creates a Forum.
func New(cfg ForumConfig) (*Forum, error) {
	if cfg.Database == nil {
		return nil, errors.New("no database provided")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	logger = logger.With("component", "forum")
	return &Forum{
		logger:   logger,
		db:       cfg.Database,
		eventBus: cfg.EventBus,
	}, nil
}

// CreatePost stores a new post under the given ticket.
func (f *Forum) CreatePost(
	content string,
	ticket string,
) (*models.Post, error) {
	post, err := f.db.PostCreate(content, ticket)
	if err != nil {
		return nil, err
	}
	f.logger.Info(
		"post created",
		"id", post.ID,
		"ticket", ticket,
	)
	if f.eventBus != nil {
		f.eventBus.Publish(
			event.PostCreatedEventType,
			event.PostCreatedEvent{
				ID:     post.ID,
				Ticket: ticket,
			},
		)
	}
	return post, nil
}

// Posts returns all posts, newest first.
func (f *Forum) Posts() ([]models.Post, error) {
	return f.db.Posts()
}

// DeletePost retracts the post with the given ID and records a ban
// callback for the supplied ticket. The post row is removed but the
// callback persists, so anyone who cached the ticket will still learn
// it was banned.
func (f *Forum) DeletePost(id uint, ticket string) error {
	if err := f.db.PostDelete(id, ticket); err != nil {
		return err
	}
	f.logger.Info(
		"post deleted and callback recorded",
		"id", id,
		"ticket", ticket,
	)
	if f.eventBus != nil {
		f.eventBus.Publish(
			event.PostDeletedEventType,
			event.PostDeletedEvent{
				ID:     id,
				Ticket: ticket,
			},
		)
		f.eventBus.Publish(
			event.CallbackRecordedEventType,
			event.CallbackRecordedEvent{
				Ticket: ticket,
				Action: models.CallbackActionBan,
			},
		)
	}
	return nil
}

// CallbackTickets returns every callback ticket on the public board.
func (f *Forum) CallbackTickets() ([]string, error) {
	return f.db.CallbackTickets()
}

// Register creates a new user account.
func (f *Forum) Register(username string, password string) error {
	_, err := f.db.UserCreate(username, hashPassword(password))
	if err != nil {
		return err
	}
	f.logger.Info("user registered", "username", username)
	return nil
}

// Login validates the given credentials.
func (f *Forum) Login(username string, password string) error {
	user, err := f.db.UserByUsername(username)
	if err != nil {
		return err
	}
	if user == nil || user.PasswordHash != hashPassword(password) {
		return ErrInvalidCredentials
	}
	return nil
}
