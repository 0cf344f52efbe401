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
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/blinklabs-io/ghostpost/verifier"
	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	promRegistry     prometheus.Registerer
	logger           *slog.Logger
	verifier         verifier.Verifier
	dataDir          string
	apiListenAddress string
	verifierCommand  string
	verifierWorkDir  string
	verifierEnv      []string
	verifierTimeout  time.Duration
	shutdownTimeout  time.Duration
	tracing          bool
	tracingStdout    bool
}

func (n *Node) configValidate() error {
	if n.config.apiListenAddress == "" {
		return errors.New("no API listen address defined")
	}
	if n.config.verifier == nil && n.config.verifierCommand == "" {
		return errors.New("no verifier command defined")
	}
	return nil
}

// ConfigOptionFunc is a type that represents functions that modify the
// node config
type ConfigOptionFunc func(*Config)

// NewConfig creates a new ghostpost config with the specified options
func NewConfig(opts ...ConfigOptionFunc) Config {
	c := Config{
		// Default logger will throw away logs
		// We do this so we don't have to add guards around every log operation
		logger:           slog.New(slog.NewJSONHandler(io.Discard, nil)),
		apiListenAddress: ":8000",
	}
	// Apply options
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger specifies the logger to use. This defaults to discarding
// log output
func WithLogger(logger *slog.Logger) ConfigOptionFunc {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithDatabasePath specifies the persistent data directory to use. The
// default is to store everything in memory
func WithDatabasePath(dataDir string) ConfigOptionFunc {
	return func(c *Config) {
		c.dataDir = dataDir
	}
}

// WithApiListenAddress specifies the listen address for the REST API
// server. The default is ":8000"
func WithApiListenAddress(addr string) ConfigOptionFunc {
	return func(c *Config) {
		c.apiListenAddress = addr
	}
}

// WithVerifierCommand specifies the path to the external proof
// verifier binary
func WithVerifierCommand(command string) ConfigOptionFunc {
	return func(c *Config) {
		c.verifierCommand = command
	}
}

// WithVerifierWorkDir specifies the parent directory for per-submission
// verifier scratch directories. The default is the system temp
// directory
func WithVerifierWorkDir(dir string) ConfigOptionFunc {
	return func(c *Config) {
		c.verifierWorkDir = dir
	}
}

// WithVerifierEnv specifies extra environment variables for the
// verifier process, such as RISC0_DEV_MODE
func WithVerifierEnv(env []string) ConfigOptionFunc {
	return func(c *Config) {
		c.verifierEnv = env
	}
}

// WithVerifierTimeout specifies the wall-clock timeout for a single
// verifier invocation. The default is 60 seconds
func WithVerifierTimeout(timeout time.Duration) ConfigOptionFunc {
	return func(c *Config) {
		c.verifierTimeout = timeout
	}
}

// WithVerifier specifies a verifier adapter to use instead of spawning
// the external verifier binary. This is mostly useful for testing
func WithVerifier(v verifier.Verifier) ConfigOptionFunc {
	return func(c *Config) {
		c.verifier = v
	}
}

// WithPrometheusRegistry specifies a prometheus.Registerer instance to add
// metrics to. In most cases, prometheus.DefaultRegistry would be a good
// choice to get metrics working
func WithPrometheusRegistry(registry prometheus.Registerer) ConfigOptionFunc {
	return func(c *Config) {
		c.promRegistry = registry
	}
}

// WithTracing enables tracing. By default, spans are submitted to a HTTP(s)
// endpoint using OTLP. This can be configured using the OTEL_EXPORTER_OTLP_*
// env vars documented in the README for
// [go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp]
func WithTracing(tracing bool) ConfigOptionFunc {
	return func(c *Config) {
		c.tracing = tracing
	}
}

// WithTracingStdout enables tracing output to stdout. This also requires
// tracing to enabled separately. This is mostly useful for debugging
func WithTracingStdout(stdout bool) ConfigOptionFunc {
	return func(c *Config) {
		c.tracingStdout = stdout
	}
}

// WithShutdownTimeout specifies the timeout for graceful shutdown. The
// default is 30 seconds
func WithShutdownTimeout(timeout time.Duration) ConfigOptionFunc {
	return func(c *Config) {
		c.shutdownTimeout = timeout
	}
}
