package missions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/san-e/flint/core/paths"
)

const fixtureMBases = `[MBase]
nickname = li01_01_base
local_faction = li_p_grp
diff = 1

[MVendor]
num_offers = 2, 4

[BaseFaction]
faction = li_p_grp
weight = 10
offers_missions = true

[GF_NPC]
nickname = li01_01_bartender
individual_name = 458
affiliation = li_p_grp
voice = pilot_f_mid_01
room = bar

[MRoom]
nickname = bar
character_density = 7

[MBase]
nickname = li01_02_base
local_faction = li_p_grp
diff = 2
`

const fixtureFactionProps = `[FactionProps]
affiliation = li_p_grp
legality = lawful
nickname_plurality = singular
msg_id_prefix = gcs_refer_faction_li_p
jump_preference = jumpgate
npc_ship = li_p_li_elite
`

const fixtureNews = `[NewsItem]
category = 131834
headline = 131836
text = 131837
base = li01_01_base
base = li01_02_base

[NewsItem]
category = 131834
headline = 131838
text = 131839
base = li01_02_base
`

// fixtureInstallation builds a minimal installation whose mission files
// live under lowercased directories, so every service read goes through
// case resolution.
func fixtureInstallation(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"DATA", "DLLS", "EXE"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0755))
	}
	rootConfig := "[Freelancer]\ndata path = ..\\DATA\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "EXE", "freelancer.ini"), []byte(rootConfig), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "EXE", "Freelancer.exe"), []byte{}, 0644))

	missions := filepath.Join(root, "DATA", "missions")
	require.NoError(t, os.MkdirAll(missions, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(missions, "MBases.ini"), []byte(fixtureMBases), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(missions, "Faction_Prop.ini"), []byte(fixtureFactionProps), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(missions, "News.ini"), []byte(fixtureNews), 0644))
	return root
}

func newTestService(t *testing.T) (*Service, *paths.Session, string) {
	t.Helper()
	root := fixtureInstallation(t)
	session := paths.NewSession(zap.NewNop(), false)
	service := NewService(session, zap.NewNop())
	require.NoError(t, session.SetRoot(root, false))
	return service, session, root
}

func TestService(t *testing.T) {
	t.Run("Bases", func(t *testing.T) {
		service, _, _ := newTestService(t)

		bases, err := service.Bases()
		require.NoError(t, err)
		require.Len(t, bases, 2)
		assert.Equal(t, "li01_01_base", bases[0].Nickname)
		assert.Len(t, bases[0].Vendors, 1)
		assert.Len(t, bases[0].NPCs, 1)
		assert.Len(t, bases[0].Rooms, 1)
		assert.Empty(t, bases[1].Rooms)
	})

	t.Run("Base Lookup", func(t *testing.T) {
		service, _, _ := newTestService(t)

		b, ok, err := service.Base("li01_02_base")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2, b.Diff)

		_, ok, err = service.Base("unknown_base")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Faction Props", func(t *testing.T) {
		service, _, _ := newTestService(t)

		p, ok, err := service.FactionProp("li_p_grp")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "lawful", p.Legality)
		assert.Equal(t, []string{"li_p_li_elite"}, p.NPCShips)
	})

	t.Run("News", func(t *testing.T) {
		service, _, _ := newTestService(t)

		items, err := service.NewsFor("li01_02_base")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 131836, items[0].Headline)
		assert.Equal(t, 131838, items[1].Headline)

		items, err = service.NewsFor("li01_01_base")
		require.NoError(t, err)
		require.Len(t, items, 1)

		items, err = service.NewsFor("unknown_base")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Caching", func(t *testing.T) {
		service, _, root := newTestService(t)

		first, err := service.Bases()
		require.NoError(t, err)

		// Rewriting the file on disk is invisible while the cache holds.
		require.NoError(t, os.WriteFile(
			filepath.Join(root, "DATA", "missions", "MBases.ini"),
			[]byte("[MBase]\nnickname = other_base\nlocal_faction = li_p_grp\ndiff = 9\n"), 0644))

		second, err := service.Bases()
		require.NoError(t, err)
		require.Len(t, second, 2)
		assert.Same(t, first[0], second[0])
	})

	t.Run("Root Change Invalidates", func(t *testing.T) {
		service, session, _ := newTestService(t)

		_, err := service.Bases()
		require.NoError(t, err)
		_, err = service.News()
		require.NoError(t, err)

		other := fixtureInstallation(t)
		require.NoError(t, os.WriteFile(
			filepath.Join(other, "DATA", "missions", "MBases.ini"),
			[]byte("[MBase]\nnickname = other_base\nlocal_faction = li_p_grp\ndiff = 9\n"), 0644))
		require.NoError(t, session.SetRoot(other, false))

		bases, err := service.Bases()
		require.NoError(t, err)
		require.Len(t, bases, 1)
		assert.Equal(t, "other_base", bases[0].Nickname)
	})

	t.Run("Missing File", func(t *testing.T) {
		service, _, root := newTestService(t)
		require.NoError(t, os.Remove(filepath.Join(root, "DATA", "missions", "News.ini")))

		_, err := service.News()
		assert.Error(t, err)
	})
}
