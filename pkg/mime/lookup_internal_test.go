package mime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	t.Run("extensions_are_lowercased", func(t *testing.T) {
		table, err := parseTable([]byte("font/woff2: [WOFF2]\n"))
		require.NoError(t, err)
		assert.Equal(t, "font/woff2", table["woff2"])
	})

	t.Run("duplicate_extension_rejected", func(t *testing.T) {
		_, err := parseTable([]byte("text/javascript: [js]\napplication/javascript: [js]\n"))
		assert.Error(t, err)
	})

	t.Run("embedded_table_parses", func(t *testing.T) {
		table, err := parseTable(typesTable)
		require.NoError(t, err)
		assert.Equal(t, "text/javascript", table["js"])
	})
}
