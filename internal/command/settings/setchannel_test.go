package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChannelRef(t *testing.T) {
	assert.Equal(t, "123456789", parseChannelRef("<#123456789>"))
	assert.Equal(t, "123456789", parseChannelRef("123456789"))
	assert.Equal(t, "", parseChannelRef("#general"))
	assert.Equal(t, "", parseChannelRef("<#>"))
	assert.Equal(t, "", parseChannelRef("<#12ab>"))
	assert.Equal(t, "", parseChannelRef(""))
}
