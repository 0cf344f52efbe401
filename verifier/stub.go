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

package verifier

import (
	"context"
)

// StubVerifier is a Verifier that returns a canned journal or error.
// It lets the state-transition coordinator be exercised without the
// real proof system.
type StubVerifier struct {
	Journal *Journal
	Err     error
	// Calls counts Verify invocations.
	Calls int
}

func (s *StubVerifier) Verify(
	_ context.Context,
	_ []byte,
) (*Journal, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Journal, nil
}
