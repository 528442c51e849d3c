package server

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/san-e/flint/core/paths"
	"github.com/san-e/flint/feature/missions"
)

const testMBases = `[MBase]
nickname = li01_01_base
local_faction = li_p_grp
diff = 1

[MRoom]
nickname = bar

[MBase]
nickname = li01_02_base
local_faction = li_p_grp
diff = 2
`

const testFactionProps = `[FactionProps]
affiliation = li_p_grp
legality = lawful
nickname_plurality = singular
msg_id_prefix = gcs_refer_faction_li_p
jump_preference = jumpgate
`

const testNews = `[NewsItem]
category = 131834
headline = 131836
text = 131837
base = li01_01_base
`

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"DATA", "DLLS", "EXE"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "EXE", "freelancer.ini"),
		[]byte("[Freelancer]\ndata path = ..\\DATA\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "EXE", "Freelancer.exe"), []byte{}, 0644))

	missionsDir := filepath.Join(root, "DATA", "MISSIONS")
	require.NoError(t, os.MkdirAll(missionsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(missionsDir, "mbases.ini"), []byte(testMBases), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(missionsDir, "faction_prop.ini"), []byte(testFactionProps), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(missionsDir, "news.ini"), []byte(testNews), 0644))

	session := paths.NewSession(zap.NewNop(), false)
	require.NoError(t, session.SetRoot(root, false))
	service := missions.NewService(session, zap.NewNop())

	app := fiber.New()
	NewHandler(service, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleBases(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/missions/bases", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["bases"], 2)
}

func TestHandleBase(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/missions/bases/li01_02_base", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "li01_02_base", body["nickname"])
	assert.Equal(t, float64(2), body["diff"])
}

func TestHandleBaseNotFound(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/missions/bases/no_such_base", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "unknown base", body["error"])
}

func TestHandleBaseNews(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/missions/bases/li01_01_base/news", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, float64(1), body["count"])

	// A base without news is an empty list, not an error.
	req = httptest.NewRequest("GET", "/missions/bases/li01_02_base/news", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleFactions(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/missions/factions", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, float64(1), body["count"])
}

func TestHandleFaction(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/missions/factions/li_p_grp", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "lawful", body["legality"])

	req = httptest.NewRequest("GET", "/missions/factions/no_such_grp", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
