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

// Post is one piece of published content carrying the ticket it was
// published under. Deleting a post leaves any callbacks for its
// ticket in place.
type Post struct {
	ID        uint      `gorm:"primarykey"`
	Content   string    `gorm:"not null"`
	Timestamp time.Time `gorm:"index"`
	Ticket    string    `gorm:"size:255;index"`
}

func (Post) TableName() string {
	return "post"
}
