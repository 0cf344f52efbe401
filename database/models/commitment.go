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

// Commitment is one accepted state transition from a verified proof
// journal. Rows are created exactly once and never mutated or deleted.
// The nonce uniqueness is the replay-protection invariant; the
// commitment hash uniqueness guards against double-insertion of the
// same proof output.
type Commitment struct {
	ID             uint      `gorm:"primarykey"`
	CommitmentHash string    `gorm:"size:64;uniqueIndex;not null"`
	Nonce          string    `gorm:"size:64;uniqueIndex;not null"`
	NewTicket      string    `gorm:"size:255;not null"`
	CreatedAt      time.Time `gorm:"index"`
}

func (Commitment) TableName() string {
	return "commitment"
}
