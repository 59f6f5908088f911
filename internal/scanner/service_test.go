package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/blockmap/internal/config"
	"github.com/tildaslashalef/blockmap/internal/loggy"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(config.ScanConfig{
		Callee:        "router",
		CommentMarker: "//",
	}, loggy.NewNoopLogger())
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanFile(t *testing.T) {
	svc := newTestService(t)

	path := writeFixture(t, "routers.ts", `export const appRouter = router({
  // portfolio endpoints
  portfolio: router({
    list: publicProcedure.query(() => []),
  }),
  playlist: router({
    reorder: publicProcedure.mutation(() => null),
  }),
});
`)

	scan, err := svc.ScanFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, scan.Path)
	assert.Equal(t, "TypeScript", scan.Language)
	assert.Len(t, scan.Lines, 9)
	assert.Equal(t, map[string]int{"portfolio": 2, "playlist": 5}, scan.Definitions)
}

func TestScanFileMissing(t *testing.T) {
	svc := newTestService(t)

	scan, err := svc.ScanFile(filepath.Join(t.TempDir(), "nope.ts"))
	assert.Error(t, err)
	assert.Nil(t, scan)
}

func TestExtractBlock(t *testing.T) {
	svc := newTestService(t)

	path := writeFixture(t, "routers.ts", `export const appRouter = router({
  // portfolio endpoints
  // split candidate
  portfolio: router({
    list: publicProcedure.query(() => []),
  }),
});
`)

	scan, err := svc.ScanFile(path)
	require.NoError(t, err)

	block, ok := svc.ExtractBlock(scan, "portfolio")
	require.True(t, ok)

	assert.Equal(t, "portfolio", block.Name)
	assert.Equal(t, 1, block.StartLine)
	assert.Equal(t, 3, block.DeclLine)
	assert.Equal(t, 5, block.EndLine)
	assert.Equal(t, 5, block.LineCount())

	// Extent invariant
	assert.LessOrEqual(t, block.StartLine, block.DeclLine)
	assert.LessOrEqual(t, block.DeclLine, block.EndLine)
}

func TestExtractBlockNotFound(t *testing.T) {
	svc := newTestService(t)

	path := writeFixture(t, "routers.ts", "  portfolio: router({\n  }),\n")
	scan, err := svc.ScanFile(path)
	require.NoError(t, err)

	_, ok := svc.ExtractBlock(scan, "subscription")
	assert.False(t, ok)
}

func TestLoadLines(t *testing.T) {
	t.Run("trailing newline drops the empty tail", func(t *testing.T) {
		path := writeFixture(t, "a.ts", "one\ntwo\n")
		lines, err := LoadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, lines)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		path := writeFixture(t, "b.ts", "one\ntwo")
		lines, err := LoadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, lines)
	})

	t.Run("windows line endings are stripped", func(t *testing.T) {
		path := writeFixture(t, "c.ts", "one\r\ntwo\r\n")
		lines, err := LoadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, lines)
	})
}
