package sandbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeInventory(t *testing.T) {
	t.Run("AssembledProject", func(t *testing.T) {
		inv := TakeInventory(mustAssemble(t, validRequest()))
		assert.Equal(t, []string{"/components/card.tsx"}, inv.UserPaths)
		assert.Empty(t, inv.MissingReserved)
	})

	t.Run("ExcludedAssets", func(t *testing.T) {
		files := NewFileSet()
		require.NoError(t, files.Put(EntryPath, "entry"))
		require.NoError(t, files.Put("/components/card.tsx", "card"))
		require.NoError(t, files.Put("/lib/extra.ts", "extra"))

		inv := TakeInventory(files)
		assert.Equal(t, []string{"/components/card.tsx", "/lib/extra.ts"}, inv.UserPaths)
		assert.NotContains(t, inv.MissingReserved, EntryPath)
		assert.Contains(t, inv.MissingReserved, DemoPath)
		assert.Contains(t, inv.MissingReserved, GlobalsPath)
		assert.Len(t, inv.MissingReserved, len(ReservedPaths())-1)
	})

	t.Run("Empty", func(t *testing.T) {
		inv := TakeInventory(NewFileSet())
		assert.Empty(t, inv.UserPaths)
		assert.Equal(t, ReservedPaths(), inv.MissingReserved)
	})
}
