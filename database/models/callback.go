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
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package models

import (
	"time"
)

// CallbackActionBan marks a ticket as banned. Action is stored as a
// string so new action types can be added without a schema change.
const CallbackActionBan = "ban"

// Callback is a public action record tied to a ticket. The board is
// append-only with no dedup; a ticket may accumulate multiple entries
// and readers are expected to scan all of them.
type Callback struct {
	ID        uint   `gorm:"primarykey"`
	Ticket    string `gorm:"size:255;index;not null"`
	Action    string `gorm:"size:32;not null"`
	CreatedAt time.Time
}

func (Callback) TableName() string {
	return "callback"
}
