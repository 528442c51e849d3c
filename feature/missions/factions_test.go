package missions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-e/flint/core/ini"
	"github.com/san-e/flint/core/resources"
)

func factionPropsSection(affiliation string) ini.Section {
	sec := ini.NewSection("factionprops")
	sec.Add("affiliation", affiliation)
	sec.Add("legality", "lawful")
	sec.Add("nickname_plurality", "singular")
	sec.Add("msg_id_prefix", "gcs_refer_faction_li_p")
	sec.Add("jump_preference", "jumpgate")
	return sec
}

func TestFoldFactionProps(t *testing.T) {
	t.Run("Keyed By Affiliation", func(t *testing.T) {
		liberty := factionPropsSection("li_p_grp")
		liberty.Add("npc_ship", "li_p_li_elite")
		liberty.Add("npc_ship", "li_p_li_fighter")
		liberty.Add("voice", "pilot_f_leg_f01a")
		liberty.Add("space_costume", "li_captain_head", "li_male_elite_body", "comm_br_darcy")
		liberty.Add("firstname_male", 226608, 226741)
		liberty.Add("scan_for_cargo", "commodity_cardamine", 10)
		liberty.Add("formation", "fighters", "fighter_basic")
		liberty.Add("scan_announce", true)
		liberty.Add("scan_chance", 0.25)

		props, err := FoldFactionProps([]ini.Section{
			liberty,
			factionPropsSection("fc_lr_grp"),
		})
		require.NoError(t, err)
		require.Len(t, props, 2)

		li := props["li_p_grp"]
		require.NotNil(t, li)
		assert.Equal(t, "lawful", li.Legality)
		assert.Equal(t, []string{"li_p_li_elite", "li_p_li_fighter"}, li.NPCShips)
		require.Len(t, li.SpaceCostumes, 1)
		assert.Equal(t, Costume{Head: "li_captain_head", Body: "li_male_elite_body", Accessory: "comm_br_darcy"}, li.SpaceCostumes[0])
		require.NotNil(t, li.FirstnameMale)
		assert.Equal(t, [2]int{226608, 226741}, *li.FirstnameMale)
		assert.Equal(t, []CargoScan{{Commodity: "commodity_cardamine", Weight: 10}}, li.ScanForCargo)
		assert.Equal(t, []Formation{{Group: "fighters", Nickname: "fighter_basic"}}, li.Formations)
		assert.True(t, li.ScanAnnounce)
		assert.Equal(t, 0.25, li.ScanChance)
	})

	t.Run("Duplicate Affiliation Last Wins", func(t *testing.T) {
		first := factionPropsSection("li_p_grp")
		second := factionPropsSection("li_p_grp")
		second.Add("mc_costume", "mc_li")

		props, err := FoldFactionProps([]ini.Section{first, second})
		require.NoError(t, err)
		require.Len(t, props, 1)
		assert.Equal(t, "mc_li", props["li_p_grp"].MCCostume)
	})

	t.Run("Foreign Sections Skipped", func(t *testing.T) {
		other := ini.NewSection("factionweight")
		other.Add("faction", "li_p_grp")

		props, err := FoldFactionProps([]ini.Section{other})
		require.NoError(t, err)
		assert.Empty(t, props)
	})

	t.Run("Missing Required Field", func(t *testing.T) {
		sec := ini.NewSection("factionprops")
		sec.Add("affiliation", "li_p_grp")

		_, err := FoldFactionProps([]ini.Section{sec})
		assert.ErrorIs(t, err, ini.ErrSchemaMismatch)
	})

	t.Run("Name Pool Resolution", func(t *testing.T) {
		sec := factionPropsSection("li_p_grp")
		sec.Add("firstname_male", 100, 102)
		sec.Add("lastname", 200, 201)

		props, err := FoldFactionProps([]ini.Section{sec})
		require.NoError(t, err)
		li := props["li_p_grp"]

		table := resources.TableResolver{
			100: "Aaron", 101: "Adam", 102: "Alan",
			200: "Archer", 201: "Avery",
		}
		males, err := li.MaleFirstNames(table)
		require.NoError(t, err)
		assert.Equal(t, []string{"Aaron", "Adam", "Alan"}, males)
		lasts, err := li.LastNames(table)
		require.NoError(t, err)
		assert.Equal(t, []string{"Archer", "Avery"}, lasts)

		females, err := li.FemaleFirstNames(table)
		require.NoError(t, err)
		assert.Nil(t, females)

		li.FirstnameMale = &[2]int{100, 999}
		_, err = li.MaleFirstNames(table)
		assert.ErrorIs(t, err, resources.ErrNotFound)
	})
}
