package httpapi

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracklist/internal/adapters/filesystem"
	"tracklist/internal/domain"
	"tracklist/internal/logging"
)

// testEnv sets up a temp design dir with a few designs and a router over it.
func testEnv(t *testing.T) (string, http.Handler) {
	t.Helper()

	dir := t.TempDir()
	repo, err := filesystem.NewRepository([]string{dir}, nil, logging.Discard())
	require.NoError(t, err)

	layout := []domain.TrackPoint{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 4}, {X: 10, Y: 10, Z: 8}, {X: 0, Y: 10, Z: 2}}
	designs := map[string]*domain.Design{
		"Beast":  {RideType: 52, Excitement: 70, Cost: 300, Layout: layout},
		"Comet":  {RideType: 52, Excitement: 50, Cost: 200, Layout: layout},
		"Racer":  {RideType: 52, Excitement: 60, Cost: 100, Flags: domain.FlagVehicleUnavailable, Layout: layout},
		"Putter": {RideType: 67},
	}
	for name, d := range designs {
		require.NoError(t, repo.SaveDesign(filepath.Join(dir, name+".td.yaml"), d))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.td.yaml"), []byte("ride_type: 52\nratings: ["), 0644))

	h := NewHandler(repo, repo, domain.DefaultRideTypes(), domain.Metric, logging.Discard())
	return dir, NewRouter(h)
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func designPath(dir, name string) string {
	return url.QueryEscape(filepath.Join(dir, name+".td.yaml"))
}

func TestHealth(t *testing.T) {
	_, router := testEnv(t)

	w := get(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListDesigns(t *testing.T) {
	_, router := testEnv(t)

	names := func(resp DesignListResponse) []string {
		var out []string
		for _, d := range resp.Designs {
			out = append(out, d.Name)
		}
		return out
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name order", "ride=52", []string{"Beast", "Comet", "Racer"}},
		{"filter", "ride=52&filter=E", []string{"Beast", "Comet", "Racer"}},
		{"filter narrows", "ride=52&filter=co", []string{"Comet"}},
		{"excitement smallest first", "ride=52&sort=excitement", []string{"Comet", "Racer", "Beast"}},
		{"excitement largest first", "ride=52&sort=excitement&asc=true", []string{"Beast", "Racer", "Comet"}},
		{"other ride type", "ride=67", []string{"Putter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, "/api/designs?"+tt.query)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp DesignListResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, names(resp))
		})
	}
}

func TestListDesigns_Costs(t *testing.T) {
	_, router := testEnv(t)

	w := get(t, router, "/api/designs?ride=52&costs=true")
	require.Equal(t, http.StatusOK, w.Code)

	var resp DesignListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.TotalCost)
	assert.Equal(t, int32(600), *resp.TotalCost)
	require.Len(t, resp.Designs, 3)
	require.NotNil(t, resp.Designs[0].Cost)
	assert.Equal(t, int32(300), *resp.Designs[0].Cost)
	assert.Equal(t, "Wooden Roller Coaster", resp.RideName)
	assert.Equal(t, "name", resp.SortKey)
}

func TestListDesigns_BadRequest(t *testing.T) {
	_, router := testEnv(t)

	for _, q := range []string{"", "ride=x", "ride=256", "ride=52&asc=maybe", "ride=52&sort=bogus", "ride=52&sort=cost"} {
		t.Run(q, func(t *testing.T) {
			w := get(t, router, "/api/designs?"+q)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var body errResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestSortKeys(t *testing.T) {
	_, router := testEnv(t)

	w := get(t, router, "/api/designs/keys?ride=67")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"keys":[
		{"key":"name","label":"Name"},
		{"key":"space","label":"Space required"},
		{"key":"holes","label":"Holes"}
	]}`, w.Body.String())
}

func TestGetDesign(t *testing.T) {
	dir, router := testEnv(t)

	w := get(t, router, "/api/design?path="+designPath(dir, "Racer"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail DesignDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Racer", detail.Name)
	assert.Equal(t, 52, detail.RideType)
	assert.Equal(t, "Wooden Roller Coaster", detail.RideName)
	assert.Contains(t, detail.Stats, StatItem{Label: "Excitement rating", Value: "6.00"})
	assert.Len(t, detail.Warnings, 1)
}

func TestGetDesign_Errors(t *testing.T) {
	dir, router := testEnv(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing path", "/api/design", http.StatusBadRequest},
		{"not found", "/api/design?path=" + designPath(dir, "Nope"), http.StatusNotFound},
		{"unparsable", "/api/design?path=" + designPath(dir, "Broken"), http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, tt.target)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestGetDesign_OutsideDesignDirs(t *testing.T) {
	_, router := testEnv(t)

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("db_password_hunter2"), 0644))
	stray := filepath.Join(outside, "Stray.td.yaml")
	require.NoError(t, os.WriteFile(stray, []byte("ride_type: 52\n"), 0644))

	for _, path := range []string{secret, stray, filepath.Join(outside, "missing.txt")} {
		for _, route := range []string{"/api/design", "/api/design/preview"} {
			w := get(t, router, route+"?path="+url.QueryEscape(path))
			assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
			assert.NotContains(t, w.Body.String(), "hunter2")
			assert.NotContains(t, w.Body.String(), outside)
		}
	}
}

func TestGetDesign_LoadErrorHidesCause(t *testing.T) {
	dir, router := testEnv(t)

	w := get(t, router, "/api/design?path="+designPath(dir, "Broken"))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "cannot load design "+filepath.Join(dir, "Broken.td.yaml"), body["error"])
	assert.NotContains(t, body["error"], "yaml:")
}

func TestPreview(t *testing.T) {
	dir, router := testEnv(t)

	w := get(t, router, "/api/design/preview?path="+designPath(dir, "Beast")+"&rotation=1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, domain.PreviewWidth, img.Bounds().Dx())
	assert.Equal(t, domain.PreviewHeight, img.Bounds().Dy())

	w = get(t, router, "/api/design/preview?path="+designPath(dir, "Beast")+"&width=185&scenery=false")
	require.Equal(t, http.StatusOK, w.Code)
	img, err = png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 185, img.Bounds().Dx())
}

func TestPreview_BadRequest(t *testing.T) {
	dir, router := testEnv(t)
	path := designPath(dir, "Beast")

	for _, q := range []string{"rotation=4", "rotation=-1", "rotation=x", "width=-5", "width=100000", "scenery=nah"} {
		t.Run(q, func(t *testing.T) {
			w := get(t, router, "/api/design/preview?path="+path+"&"+q)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestNotFoundRoute(t *testing.T) {
	_, router := testEnv(t)

	w := get(t, router, "/api/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}
