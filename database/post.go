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

package database

import (
	"time"

	"github.com/blinklabs-io/ghostpost/database/models"
	"gorm.io/gorm"
)

// PostCreate stores a new post under the given ticket. Ticket
// legitimacy is not checked against the commitment ledger; auditors
// cross-reference the public boards instead.
func (d *Database) PostCreate(
	content string,
	ticket string,
) (*models.Post, error) {
	item := models.Post{
		Content:   content,
		Timestamp: time.Now(),
		Ticket:    ticket,
	}
	result := d.db.Create(&item)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

// Posts returns all posts ordered by timestamp descending.
func (d *Database) Posts() ([]models.Post, error) {
	var ret []models.Post
	result := d.db.Order("timestamp DESC").Find(&ret)
	if result.Error != nil {
		return nil, result.Error
	}
	return ret, nil
}

// PostDelete removes the post with the given ID and records a ban
// callback for the supplied ticket. Both writes happen in a single
// transaction so the callback is recorded iff the delete commits; the
// callback row outlives the post.
func (d *Database) PostDelete(id uint, ticket string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Post{})
		if result.Error != nil {
			return result.Error
		}
		return d.CallbackAdd(ticket, models.CallbackActionBan, tx)
	})
}
