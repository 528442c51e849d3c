package missions

import (
	"fmt"

	"github.com/san-e/flint/core/ini"
	"github.com/san-e/flint/core/resources"
)

// Costume is one space costume combination (head, body, accessory).
type Costume struct {
	Head      string `json:"head"`
	Body      string `json:"body"`
	Accessory string `json:"accessory,omitempty"`
}

// CargoScan is one commodity a faction's NPCs scan for, with its weight.
type CargoScan struct {
	Commodity string `json:"commodity"`
	Weight    int    `json:"weight"`
}

// Formation pairs a ship class group with the formation its NPCs fly.
type Formation struct {
	Group    string `json:"group"`
	Nickname string `json:"nickname"`
}

// FactionProps is a faction's space-NPC behavior template from
// faction_prop.ini, keyed by affiliation. Name fields are resource-id
// ranges resolved on demand.
type FactionProps struct {
	Affiliation       string      `json:"affiliation"`
	Legality          string      `json:"legality"`
	NicknamePlurality string      `json:"nickname_plurality"`
	MsgIDPrefix       string      `json:"msg_id_prefix"`
	JumpPreference    string      `json:"jump_preference"`
	NPCShips          []string    `json:"npc_ships,omitempty"`
	Voices            []string    `json:"voices,omitempty"`
	MCCostume         string      `json:"mc_costume,omitempty"`
	SpaceCostumes     []Costume   `json:"space_costumes,omitempty"`
	FirstnameMale     *[2]int     `json:"firstname_male,omitempty"`
	FirstnameFemale   *[2]int     `json:"firstname_female,omitempty"`
	Lastname          *[2]int     `json:"lastname,omitempty"`
	RankDesig         []int       `json:"rank_desig,omitempty"`
	FormationDesig    *[2]int     `json:"formation_desig,omitempty"`
	LargeShipDesig    *int        `json:"large_ship_desig,omitempty"`
	LargeShipNames    *[2]int     `json:"large_ship_names,omitempty"`
	ScanForCargo      []CargoScan `json:"scan_for_cargo,omitempty"`
	ScanAnnounce      bool        `json:"scan_announce"`
	ScanChance        float64     `json:"scan_chance"`
	Formations        []Formation `json:"formations,omitempty"`
}

// resolveRange resolves every id in an inclusive resource-id range.
func resolveRange(r resources.Resolver, rng *[2]int) ([]string, error) {
	if rng == nil {
		return nil, nil
	}
	var out []string
	for id := rng[0]; id <= rng[1]; id++ {
		s, err := r.Lookup(id)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// MaleFirstNames resolves the faction's male first-name pool.
func (p *FactionProps) MaleFirstNames(r resources.Resolver) ([]string, error) {
	return resolveRange(r, p.FirstnameMale)
}

// FemaleFirstNames resolves the faction's female first-name pool.
func (p *FactionProps) FemaleFirstNames(r resources.Resolver) ([]string, error) {
	return resolveRange(r, p.FirstnameFemale)
}

// LastNames resolves the faction's last-name pool.
func (p *FactionProps) LastNames(r resources.Resolver) ([]string, error) {
	return resolveRange(r, p.Lastname)
}

func newFactionProps(sec *ini.Section) (*FactionProps, error) {
	f := newFieldReader(sec)
	p := &FactionProps{
		Affiliation:       f.reqStr("affiliation"),
		Legality:          f.reqStr("legality"),
		NicknamePlurality: f.reqStr("nickname_plurality"),
		MsgIDPrefix:       f.reqStr("msg_id_prefix"),
		JumpPreference:    f.reqStr("jump_preference"),
		NPCShips:          f.flatStrs("npc_ship"),
		Voices:            f.flatStrs("voice"),
		MCCostume:         f.optStr("mc_costume"),
		FirstnameMale:     f.optPair("firstname_male"),
		FirstnameFemale:   f.optPair("firstname_female"),
		Lastname:          f.optPair("lastname"),
		FormationDesig:    f.optPair("formation_desig"),
		LargeShipDesig:    f.optInt("large_ship_desig"),
		LargeShipNames:    f.optPair("large_ship_names"),
		ScanAnnounce:      f.optBool("scan_announce"),
		ScanChance:        f.optFloat("scan_chance"),
	}

	if f.err == nil && sec.Has("rank_desig") {
		v, _ := sec.Last("rank_desig")
		ns, err := v.Ints()
		if err != nil {
			f.fail("rank_desig", err)
		} else {
			p.RankDesig = ns
		}
	}

	f.each("space_costume", func(v ini.Value) error {
		s := v.Strings()
		if len(s) < 2 {
			return fmt.Errorf("expected at least head and body, got %d scalars: %w", len(s), ini.ErrSchemaMismatch)
		}
		c := Costume{Head: s[0], Body: s[1]}
		if len(s) > 2 {
			c.Accessory = s[2]
		}
		p.SpaceCostumes = append(p.SpaceCostumes, c)
		return nil
	})
	f.each("scan_for_cargo", func(v ini.Value) error {
		if len(v) != 2 {
			return fmt.Errorf("expected commodity and weight, got %d scalars: %w", len(v), ini.ErrSchemaMismatch)
		}
		commodity, err := ini.Value{v[0]}.Str()
		if err != nil {
			return err
		}
		weight, err := ini.Value{v[1]}.Int()
		if err != nil {
			return err
		}
		p.ScanForCargo = append(p.ScanForCargo, CargoScan{Commodity: commodity, Weight: weight})
		return nil
	})
	f.each("formation", func(v ini.Value) error {
		if len(v) != 2 {
			return fmt.Errorf("expected group and formation, got %d scalars: %w", len(v), ini.ErrSchemaMismatch)
		}
		s := v.Strings()
		p.Formations = append(p.Formations, Formation{Group: s[0], Nickname: s[1]})
		return nil
	})

	return p, f.err
}

// FoldFactionProps folds a flat [FactionProps] section stream into a map
// keyed by affiliation. Later sections with the same affiliation replace
// earlier ones, mirroring how the game reloads duplicate blocks.
func FoldFactionProps(sections []ini.Section) (map[string]*FactionProps, error) {
	props := make(map[string]*FactionProps)
	for i := range sections {
		sec := &sections[i]
		if sec.Name != "factionprops" {
			continue
		}
		p, err := newFactionProps(sec)
		if err != nil {
			return nil, err
		}
		props[p.Affiliation] = p
	}
	return props, nil
}
