// Copyright 2020-2021 Dolthub, Inc.
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

package cascade

import (
	"gopkg.in/yaml.v2"
)

// Config tunes the search driver. The zero value is a valid, fully-enabled
// configuration (pruning on, tracing off, no partial-exploration budget).
type Config struct {
	// PartialExploreIter caps the number of rule applications (one per
	// binding a rule body is run on) before the search is forced to
	// terminate with whatever winners it has. Zero means unbounded.
	PartialExploreIter int `yaml:"partial_explore_iter"`

	// PartialExploreSpace caps the number of groups the search is allowed to
	// explore before forcing termination. Zero means unbounded.
	PartialExploreSpace int `yaml:"partial_explore_space"`

	// DisablePruning turns off cost_limit branch-and-bound pruning; every
	// task runs to completion regardless of already-known winner costs.
	// Useful for debugging and for the exhaustive-search test scenarios.
	DisablePruning bool `yaml:"disable_pruning"`

	// EnableTracing wraps every task Execute in an opentracing span and logs
	// a task-end event at trace level; the trace-level task-begin event is
	// logged whether or not tracing is enabled.
	EnableTracing bool `yaml:"enable_tracing"`
}

// LoadConfig parses a YAML document into a Config, matching the shape
// integrators expect when wiring an Engine's configuration from file.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, ErrConfig.Wrap(err)
	}
	if cfg.PartialExploreIter < 0 || cfg.PartialExploreSpace < 0 {
		return Config{}, ErrConfig.New("partial_explore_iter and partial_explore_space must be non-negative")
	}
	return cfg, nil
}
