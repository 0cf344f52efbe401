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

package database

import (
	"testing"
	"time"

	"github.com/blinklabs-io/ghostpost/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCreateAndList(t *testing.T) {
	db := newTestDatabase(t)

	posts, err := db.Posts()
	require.NoError(t, err)
	assert.Empty(t, posts)

	first, err := db.PostCreate("hello", "T1")
	require.NoError(t, err)
	require.NotNil(t, first)

	// Force distinct timestamps so descending order is deterministic
	second, err := db.PostCreate("world", "T2")
	require.NoError(t, err)
	result := db.DB().Model(&models.Post{}).
		Where("id = ?", second.ID).
		Update("timestamp", first.Timestamp.Add(time.Second))
	require.NoError(t, result.Error)

	posts, err = db.Posts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "world", posts[0].Content)
	assert.Equal(t, "hello", posts[1].Content)
}

func TestPostDeleteRecordsCallback(t *testing.T) {
	db := newTestDatabase(t)

	post, err := db.PostCreate("content", "T1")
	require.NoError(t, err)

	err = db.PostDelete(post.ID, "T1")
	require.NoError(t, err)

	// Post is gone
	posts, err := db.Posts()
	require.NoError(t, err)
	assert.Empty(t, posts)

	// Callback for the ticket persists after the post is deleted
	tickets, err := db.CallbackTickets()
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, tickets)

	callbacks, err := db.Callbacks()
	require.NoError(t, err)
	require.Len(t, callbacks, 1)
	assert.Equal(t, models.CallbackActionBan, callbacks[0].Action)
}

func TestPostDeleteMissingStillRecordsCallback(t *testing.T) {
	db := newTestDatabase(t)

	// Deleting a nonexistent post is not an error; the callback is
	// still recorded for the supplied ticket
	err := db.PostDelete(42, "T9")
	require.NoError(t, err)

	tickets, err := db.CallbackTickets()
	require.NoError(t, err)
	assert.Equal(t, []string{"T9"}, tickets)
}

func TestCallbackTicketsEmpty(t *testing.T) {
	db := newTestDatabase(t)

	tickets, err := db.CallbackTickets()
	require.NoError(t, err)
	require.NotNil(t, tickets)
	assert.Empty(t, tickets)
}

func TestCallbackNoDedup(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(
		t,
		db.CallbackAdd("T1", models.CallbackActionBan, nil),
	)
	require.NoError(
		t,
		db.CallbackAdd("T1", models.CallbackActionBan, nil),
	)

	tickets, err := db.CallbackTickets()
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T1"}, tickets)
}
