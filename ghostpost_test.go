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

package ghostpost

import (
	"testing"
	"time"

	"github.com/blinklabs-io/ghostpost/verifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeRunStop(t *testing.T) {
	n, err := New(NewConfig(
		WithVerifier(&verifier.StubVerifier{}),
		WithApiListenAddress("127.0.0.1:0"),
		WithDatabasePath(t.TempDir()),
		WithShutdownTimeout(5*time.Second),
	))
	require.NoError(t, err)

	runErr := make(chan error, 1)
	go func() {
		runErr <- n.Run()
	}()

	// Give the node time to come up before shutting it down
	time.Sleep(500 * time.Millisecond)
	require.NoError(t, n.Stop())

	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for node to stop")
	}

	// Stop is idempotent
	assert.NoError(t, n.Stop())
}
