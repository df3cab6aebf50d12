package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainafood/grocery-orders/internal/handler"
)

func TestDevCallersRoundTrip(t *testing.T) {
	require.NoError(t, printDevTokens("dev-secret"))

	sec := handler.NewSecurityHandler([]byte("dev-secret"))
	for _, c := range devCallers {
		token, err := sec.IssueToken(c, devTokenTTL)
		require.NoError(t, err)

		got, err := sec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestRun_DryRun(t *testing.T) {
	path := writeFeed(t, "feed.json", []byte(feedJSON))
	require.NoError(t, run(t.Context(), "", []string{path, path}, 10, true))
}
