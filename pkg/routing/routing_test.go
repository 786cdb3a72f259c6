package routing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules_Builtin(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)

	c := NewClassifier(rules)
	assert.Equal(t, RouteClassAPI, c.Classify("/roster/api/week"))
	assert.Equal(t, RouteClassOps, c.Classify("/health"))
	assert.Equal(t, RouteClassOps, c.Classify("/debug/prometheus"))
	assert.Equal(t, RouteClassOther, c.Classify("/healthz"))
	assert.ElementsMatch(t, []string{"/health", "/debug/prometheus"}, c.Prefixes(RouteClassOps))
}

func TestLoadRules_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nroutes:\n  - prefix: /metrics\n    class: ops\n"), 0o600))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []Rule{{Prefix: "/metrics", Class: RouteClassOps}}, rules)

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseRules_Rejects(t *testing.T) {
	cases := map[string]string{
		"version":  "version: 2\nroutes: []\n",
		"empty":    "version: 1\nroutes:\n  - prefix: ' '\n    class: ops\n",
		"relative": "version: 1\nroutes:\n  - prefix: health\n    class: ops\n",
		"class":    "version: 1\nroutes:\n  - prefix: /x\n    class: ui\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRules([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestClassifier_LongestPrefixWins(t *testing.T) {
	c := NewClassifier([]Rule{
		{Prefix: "/roster", Class: RouteClassOther},
		{Prefix: "/roster/api/internal", Class: RouteClassOps},
	})
	assert.Equal(t, RouteClassOps, c.Classify("/roster/api/internal/stats"))
	assert.Equal(t, RouteClassOther, c.Classify("/roster/api/week"))
	assert.Equal(t, RouteClassAPI, c.Classify("/billing/api"))
}

func TestHasPathPrefixOnBoundary(t *testing.T) {
	assert.True(t, HasPathPrefixOnBoundary("/health", "/health"))
	assert.True(t, HasPathPrefixOnBoundary("/health/db", "/health"))
	assert.False(t, HasPathPrefixOnBoundary("/healthz", "/health"))
	assert.True(t, HasPathPrefixOnBoundary("/a/b", "/a/"))
	assert.True(t, HasPathPrefixOnBoundary("/anything", "/"))
	assert.False(t, HasPathPrefixOnBoundary("/x", ""))
}
