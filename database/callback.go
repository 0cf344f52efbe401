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

// CallbackAdd appends an action record for the given ticket to the
// callback board. There is no dedup and no validation that the ticket
// exists anywhere else.
func (d *Database) CallbackAdd(
	ticket string,
	action string,
	tx *gorm.DB,
) error {
	item := models.Callback{
		Ticket:    ticket,
		Action:    action,
		CreatedAt: time.Now(),
	}
	db := d.resolveDB(tx)
	result := db.Create(&item)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CallbackTickets returns the ticket value of every callback on the
// board. Duplicates are possible; callers scan all entries and filter
// by ticket equality themselves.
func (d *Database) CallbackTickets() ([]string, error) {
	ret := []string{}
	result := d.db.Model(&models.Callback{}).
		Order("id").
		Pluck("ticket", &ret)
	if result.Error != nil {
		return nil, result.Error
	}
	return ret, nil
}

// Callbacks returns all callback records in insertion order.
func (d *Database) Callbacks() ([]models.Callback, error) {
	var ret []models.Callback
	result := d.db.Order("id").Find(&ret)
	if result.Error != nil {
		return nil, result.Error
	}
	return ret, nil
}
