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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigParsesYAML(t *testing.T) {
	data := []byte(`
partial_explore_iter: 100
partial_explore_space: 50
disable_pruning: true
enable_tracing: true
`)
	cfg, err := LoadConfig(data)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.PartialExploreIter)
	require.Equal(t, 50, cfg.PartialExploreSpace)
	require.True(t, cfg.DisablePruning)
	require.True(t, cfg.EnableTracing)
}

func TestLoadConfigDefaultsToZeroValue(t *testing.T) {
	cfg, err := LoadConfig([]byte(``))
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestLoadConfigRejectsNegativeBudgets(t *testing.T) {
	_, err := LoadConfig([]byte(`partial_explore_iter: -1`))
	require.Error(t, err)
	require.True(t, ErrConfig.Is(err))
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig([]byte(`: not valid yaml :::`))
	require.Error(t, err)
	require.True(t, ErrConfig.Is(err))
}
