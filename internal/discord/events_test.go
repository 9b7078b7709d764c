package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffRoles(t *testing.T) {
	cases := []struct {
		name    string
		before  []string
		after   []string
		added   []string
		removed []string
	}{
		{
			name:   "role granted",
			before: []string{"mod"},
			after:  []string{"mod", "dj"},
			added:  []string{"dj"},
		},
		{
			name:    "role revoked",
			before:  []string{"mod", "dj"},
			after:   []string{"mod"},
			removed: []string{"dj"},
		},
		{
			name:    "swap in one update",
			before:  []string{"mod"},
			after:   []string{"dj"},
			added:   []string{"dj"},
			removed: []string{"mod"},
		},
		{
			name:   "no change",
			before: []string{"mod", "dj"},
			after:  []string{"dj", "mod"},
		},
		{
			name:  "from empty",
			after: []string{"mod"},
			added: []string{"mod"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			added, removed := diffRoles(tc.before, tc.after)
			assert.ElementsMatch(t, tc.added, added)
			assert.ElementsMatch(t, tc.removed, removed)
		})
	}
}
