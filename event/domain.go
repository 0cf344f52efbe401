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

package event

const (
	CommitmentAcceptedEventType EventType = "transition.commitment"
	CallbackRecordedEventType   EventType = "board.callback"
	PostCreatedEventType        EventType = "forum.post.created"
	PostDeletedEventType        EventType = "forum.post.deleted"
)

// CommitmentAcceptedEvent is published when a proof submission
// commits a new state transition.
type CommitmentAcceptedEvent struct {
	CommitmentHash string
	OldNonce       string
	NewTicket      string
}

// CallbackRecordedEvent is published when an action is appended to
// the callback board.
type CallbackRecordedEvent struct {
	Ticket string
	Action string
}

// PostCreatedEvent is published when a post is stored.
type PostCreatedEvent struct {
	ID     uint
	Ticket string
}

// PostDeletedEvent is published when a post is retracted.
type PostDeletedEvent struct {
	ID     uint
	Ticket string
}
