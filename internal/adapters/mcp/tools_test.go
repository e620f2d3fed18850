package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracklist/internal/adapters/filesystem"
	"tracklist/internal/domain"
	"tracklist/internal/logging"
)

func setupRepo(t *testing.T) (string, *filesystem.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := filesystem.NewRepository([]string{dir}, nil, logging.Discard())
	require.NoError(t, err)

	save := func(name string, d *domain.Design) {
		require.NoError(t, repo.SaveDesign(filepath.Join(dir, name+".td.yaml"), d))
	}
	save("Beast", &domain.Design{RideType: 52, Excitement: 70, Cost: 300, SpaceRequiredX: 10, SpaceRequiredY: 5})
	save("Comet", &domain.Design{RideType: 52, Excitement: 50, Cost: 200, SpaceRequiredX: 8, SpaceRequiredY: 4})
	save("Blue Streak", &domain.Design{RideType: 52, Excitement: 60, Flags: domain.FlagSceneryUnavailable, SpaceRequiredX: 9, SpaceRequiredY: 4})
	save("Putt", &domain.Design{RideType: 67, SpaceRequiredX: 3, SpaceRequiredY: 3})
	return dir, repo
}

func readDeps(repo *filesystem.Repository) ReadDeps {
	return ReadDeps{
		Repo:   repo,
		Rides:  domain.DefaultRideTypes(),
		Format: domain.Metric,
		Log:    logging.Discard(),
	}
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestListDesignsHandler(t *testing.T) {
	_, repo := setupRepo(t)
	handler := listDesignsHandler(readDeps(repo))

	t.Run("name order", func(t *testing.T) {
		r := call(t, handler, map[string]any{"ride_type": 52})
		assert.False(t, r.IsError)
		text := resultText(r)
		assert.Contains(t, text, "Wooden Roller Coaster, sorted by Name")
		assert.Less(t, strings.Index(text, "Beast"), strings.Index(text, "Blue Streak"))
		assert.Less(t, strings.Index(text, "Blue Streak"), strings.Index(text, "Comet"))
		assert.NotContains(t, text, "Putt")
	})

	t.Run("sorted by excitement", func(t *testing.T) {
		text := resultText(call(t, handler, map[string]any{"ride_type": 52, "sort": "excitement"}))
		assert.Less(t, strings.Index(text, "Comet"), strings.Index(text, "Blue Streak"))
		assert.Less(t, strings.Index(text, "Blue Streak"), strings.Index(text, "Beast"))
	})

	t.Run("ascending flag", func(t *testing.T) {
		text := resultText(call(t, handler, map[string]any{"ride_type": 52, "sort": "excitement", "ascending": true}))
		assert.Less(t, strings.Index(text, "Beast"), strings.Index(text, "Comet"))
	})

	t.Run("filter and costs", func(t *testing.T) {
		text := resultText(call(t, handler, map[string]any{"ride_type": 52, "filter": "b", "costs": true}))
		assert.Contains(t, text, "Beast")
		assert.Contains(t, text, "Blue Streak")
		assert.NotContains(t, text, "Comet")
		assert.Contains(t, text, "Total cost: 300")
	})

	t.Run("no designs", func(t *testing.T) {
		text := resultText(call(t, handler, map[string]any{"ride_type": 23}))
		assert.Equal(t, "No designs for Log Flume.", text)
	})

	t.Run("sort key not offered", func(t *testing.T) {
		r := call(t, handler, map[string]any{"ride_type": 52, "sort": "cost"})
		assert.True(t, r.IsError)
	})

	t.Run("missing ride type", func(t *testing.T) {
		r := call(t, handler, map[string]any{})
		assert.True(t, r.IsError)
	})

	t.Run("ride type out of range", func(t *testing.T) {
		r := call(t, handler, map[string]any{"ride_type": 300})
		assert.True(t, r.IsError)
		assert.Contains(t, resultText(r), "between 0 and 255")
	})
}

func TestShowDesignHandler(t *testing.T) {
	dir, repo := setupRepo(t)
	handler := showDesignHandler(readDeps(repo))

	text := resultText(call(t, handler, map[string]any{"path": filepath.Join(dir, "Blue Streak.td.yaml")}))
	assert.Contains(t, text, "Blue Streak (Wooden Roller Coaster)")
	assert.Contains(t, text, "Excitement rating: 6.00")
	assert.Contains(t, text, "Space required: 9 x 4 blocks")
	assert.Contains(t, text, "Warning: ")

	r := call(t, handler, map[string]any{"path": filepath.Join(dir, "Missing.td.yaml")})
	assert.True(t, r.IsError)
	assert.Contains(t, resultText(r), "not found")

	secret := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("db_password_hunter2"), 0644))
	r = call(t, handler, map[string]any{"path": secret})
	assert.True(t, r.IsError)
	assert.Contains(t, resultText(r), "not found")
	assert.NotContains(t, resultText(r), "hunter2")

	r = call(t, handler, map[string]any{})
	assert.True(t, r.IsError)
}

func TestSortKeysHandler(t *testing.T) {
	_, repo := setupRepo(t)
	handler := sortKeysHandler(readDeps(repo))

	text := resultText(call(t, handler, map[string]any{"ride_type": 67}))
	assert.Equal(t, "name  Name\nspace  Space required\nholes  Holes\n", text)
}

func TestRideTypesHandler(t *testing.T) {
	_, repo := setupRepo(t)
	text := resultText(call(t, rideTypesHandler(readDeps(repo)), nil))

	assert.Less(t, strings.Index(text, "0  Spiral Roller Coaster"), strings.Index(text, "67  Mini Golf"))
	assert.Contains(t, text, "52  Wooden Roller Coaster")
}

func TestRenameHandler(t *testing.T) {
	dir, repo := setupRepo(t)
	handler := renameHandler(repo)

	r := call(t, handler, map[string]any{
		"path":     filepath.Join(dir, "Comet.td.yaml"),
		"new_name": "Comet II",
	})
	require.False(t, r.IsError, resultText(r))
	assert.Contains(t, resultText(r), "Renamed to Comet II")
	assert.FileExists(t, filepath.Join(dir, "Comet II.td.yaml"))
	assert.NoFileExists(t, filepath.Join(dir, "Comet.td.yaml"))

	r = call(t, handler, map[string]any{"path": filepath.Join(dir, "Beast.td.yaml"), "new_name": "a/b"})
	assert.True(t, r.IsError)
}

func TestDeleteHandler(t *testing.T) {
	dir, repo := setupRepo(t)
	handler := deleteHandler(repo)

	path := filepath.Join(dir, "Putt.td.yaml")
	r := call(t, handler, map[string]any{"path": path})
	require.False(t, r.IsError, resultText(r))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	r = call(t, handler, map[string]any{"path": path})
	assert.True(t, r.IsError)
}
