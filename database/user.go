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

	"github.com/blinklabs-io/ghostpost/database/models"
	"gorm.io/gorm"
)

// UserCreate registers a new user with an already-hashed password.
func (d *Database) UserCreate(
	username string,
	passwordHash string,
) (*models.User, error) {
	item := models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		result := tx.Model(&models.User{}).
			Where("username = ?", username).
			Count(&count)
		if result.Error != nil {
			return result.Error
		}
		if count > 0 {
			return ErrUsernameExists
		}
		if result := tx.Create(&item); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return ErrUsernameExists
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

// UserByUsername retrieves the user with the given username, or nil
// when no such user exists.
func (d *Database) UserByUsername(
	username string,
) (*models.User, error) {
	ret := models.User{}
	result := d.db.Where("username = ?", username).First(&ret)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
		return nil, nil // Record not found
	}
	return &ret, nil
}
