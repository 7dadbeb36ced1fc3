package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestDB points the global pool at a fresh in-memory database.
func openTestDB(t *testing.T) {
	t.Helper()
	source := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	require.NoError(t, InitDB(source))
	t.Cleanup(func() { DB.Close() })
}
