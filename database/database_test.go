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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := New(&Config{
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestNewInMemory(t *testing.T) {
	db, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, db)
	require.NoError(t, db.Close())
}

func TestNewCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	db, err := New(&Config{
		DataDir: dataDir,
	})
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	assert.DirExists(t, dataDir)
	assert.FileExists(
		t,
		filepath.Join(dataDir, "ghostpost.sqlite"),
	)
}

func TestMigratedTables(t *testing.T) {
	db := newTestDatabase(t)
	for _, table := range []string{
		"commitment",
		"callback",
		"post",
		"user",
	} {
		assert.True(
			t,
			db.DB().Migrator().HasTable(table),
			"expected table %q to exist",
			table,
		)
	}
}
