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
	"errors"
	"time"

	"github.com/blinklabs-io/ghostpost/database/models"
	"gorm.io/gorm"
)

// CommitmentCreate records an accepted state transition. The nonce
// freshness check and the insert happen inside a single transaction to
// close the race window between check and insert; the unique constraint
// on the nonce column backstops the check under concurrent writers.
func (d *Database) CommitmentCreate(
	commitmentHash string,
	nonce string,
	newTicket string,
) (*models.Commitment, error) {
	item := models.Commitment{
		CommitmentHash: commitmentHash,
		Nonce:          nonce,
		NewTicket:      newTicket,
		CreatedAt:      time.Now(),
	}
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		result := tx.Model(&models.Commitment{}).
			Where("nonce = ?", nonce).
			Count(&count)
		if result.Error != nil {
			return result.Error
		}
		if count > 0 {
			return ErrNonceUsed
		}
		if result := tx.Create(&item); result.Error != nil {
			// A duplicate key can only mean another writer won the
			// race for this nonce (or the identical proof output)
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return ErrNonceUsed
			}
			return result.Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// NonceUsed returns whether the given nonce already appears in the
// commitment ledger.
func (d *Database) NonceUsed(nonce string) (bool, error) {
	var count int64
	result := d.db.Model(&models.Commitment{}).
		Where("nonce = ?", nonce).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CommitmentByHash retrieves the commitment with the given hash, or
// nil when no such commitment exists.
func (d *Database) CommitmentByHash(
	commitmentHash string,
) (*models.Commitment, error) {
	ret := models.Commitment{}
	result := d.db.Where("commitment_hash = ?", commitmentHash).
		First(&ret)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
		return nil, nil // Record not found
	}
	return &ret, nil
}

// Commitments returns all accepted commitments in insertion order.
func (d *Database) Commitments() ([]models.Commitment, error) {
	var ret []models.Commitment
	result := d.db.Order("id").Find(&ret)
	if result.Error != nil {
		return nil, result.Error
	}
	return ret, nil
}

// CommitmentCount returns the number of accepted commitments.
func (d *Database) CommitmentCount() (int64, error) {
	var count int64
	result := d.db.Model(&models.Commitment{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
