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

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func resetGlobalConfig() {
	globalConfig = &Config{
		DatabasePath:    ".ghostpost",
		BindAddr:        "0.0.0.0",
		ApiPort:         8000,
		MetricsPort:     12798,
		VerifierCommand: "zk-verifier",
		VerifierTimeout: "60s",
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

func TestLoad_CompareFullStruct(t *testing.T) {
	resetGlobalConfig()
	yamlContent := `
databasePath: "/var/lib/ghostpost"
bindAddr: "127.0.0.1"
apiPort: 9000
metricsPort: 8088
verifierCommand: "/usr/local/bin/zk-verifier"
verifierWorkDir: "/var/tmp/ghostpost"
verifierTimeout: "90s"
verifierDevMode: true
shutdownTimeout: "10s"
tracing: true
tracingStdout: true
`

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test-ghostpost.yaml")

	err := os.WriteFile(tmpFile, []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	defer os.Remove(tmpFile)

	expected := &Config{
		DatabasePath:    "/var/lib/ghostpost",
		BindAddr:        "127.0.0.1",
		ApiPort:         9000,
		MetricsPort:     8088,
		VerifierCommand: "/usr/local/bin/zk-verifier",
		VerifierWorkDir: "/var/tmp/ghostpost",
		VerifierTimeout: "90s",
		VerifierDevMode: true,
		ShutdownTimeout: "10s",
		Tracing:         true,
		TracingStdout:   true,
	}

	actual, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !reflect.DeepEqual(actual, expected) {
		t.Errorf(
			"Loaded config does not match expected.\nActual: %+v\nExpected: %+v",
			actual,
			expected,
		)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	resetGlobalConfig()

	t.Setenv("GHOSTPOST_DATABASE_PATH", "/tmp/env-ghostpost")
	t.Setenv("GHOSTPOST_PORT", "9001")
	t.Setenv("GHOSTPOST_VERIFIER_DEV_MODE", "true")

	yamlContent := `
databasePath: "/var/lib/ghostpost"
apiPort: 9000
`
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test-ghostpost.yaml")
	err := os.WriteFile(tmpFile, []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Environment variables take precedence over the config file
	if cfg.DatabasePath != "/tmp/env-ghostpost" {
		t.Errorf(
			"unexpected databasePath: %q",
			cfg.DatabasePath,
		)
	}
	if cfg.ApiPort != 9001 {
		t.Errorf("unexpected apiPort: %d", cfg.ApiPort)
	}
	if !cfg.VerifierDevMode {
		t.Errorf("expected verifierDevMode to be enabled")
	}
}

func TestConfigContext(t *testing.T) {
	resetGlobalConfig()
	cfg := GetConfig()
	ctx := WithContext(t.Context(), cfg)
	if got := FromContext(ctx); got != cfg {
		t.Errorf("unexpected config from context: %+v", got)
	}
	if got := FromContext(t.Context()); got != nil {
		t.Errorf("expected nil config from empty context, got: %+v", got)
	}
}
