package missions

import (
	"github.com/san-e/flint/core/resources"
)

// MBase is a base's mission-specific behavior profile, declared in
// mbases.ini. It decorates the base that Nickname refers to; the child
// lists hold every section folded into it by declaration order.
type MBase struct {
	Nickname     string `json:"nickname"`
	LocalFaction string `json:"local_faction"`
	Diff         int    `json:"diff"`
	MsgIDPrefix  string `json:"msg_id_prefix,omitempty"`

	Vendors  []*MVendor     `json:"vendors,omitempty"`
	Factions []*BaseFaction `json:"factions,omitempty"`
	NPCs     []*GFNPC       `json:"npcs,omitempty"`
	Rooms    []*MRoom       `json:"rooms,omitempty"`
}

// MVendor describes the owning base's mission vendor, aka the jobs board.
type MVendor struct {
	// NumOffers is the inclusive (min, max) range of offers generated.
	NumOffers [2]int `json:"num_offers"`
}

// MissionType describes the kind and difficulty band of missions a faction
// offers at a base.
type MissionType struct {
	Kind    string  `json:"kind"`
	MinDiff float64 `json:"min_diff"`
	MaxDiff float64 `json:"max_diff"`
	Weight  int     `json:"weight"`
}

// BaseFaction is an NPC faction's presence at the owning base.
type BaseFaction struct {
	Faction        string       `json:"faction"`
	Weight         *int         `json:"weight,omitempty"`
	OffersMissions bool         `json:"offers_missions"`
	MissionType    *MissionType `json:"mission_type,omitempty"`
	NPCs           []string     `json:"npcs,omitempty"`
}

// MissionRange is a mission kind with its difficulty band, as carried on an
// individual NPC.
type MissionRange struct {
	Kind string  `json:"kind"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Bribe is one faction bribe an NPC offers.
type Bribe struct {
	Faction string `json:"faction"`
	Price   int    `json:"price"`
	IDS     int    `json:"ids"`
}

// Rumor is one rumor an NPC can share, gated on the player's reputation.
type Rumor struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Weight int    `json:"weight"`
	IDS    int    `json:"ids"`
}

// GFNPC is an individual NPC stationed at the owning base.
type GFNPC struct {
	Nickname       string        `json:"nickname"`
	Body           string        `json:"body,omitempty"`
	Head           string        `json:"head,omitempty"`
	LeftHand       string        `json:"lefthand,omitempty"`
	RightHand      string        `json:"righthand,omitempty"`
	IndividualName int           `json:"individual_name"`
	Affiliation    string        `json:"affiliation"`
	Voice          string        `json:"voice"`
	Misn           *MissionRange `json:"misn,omitempty"`
	Room           string        `json:"room,omitempty"`
	Bribes         []Bribe       `json:"bribes,omitempty"`
	Rumors         []Rumor       `json:"rumors,omitempty"`
	Know           *[4]int       `json:"know,omitempty"`
	KnowDB         string        `json:"knowdb,omitempty"`
	RumorKnowDB    string        `json:"rumorknowdb,omitempty"`
	Accessory      string        `json:"accessory,omitempty"`
	BaseAppr       string        `json:"base_appr,omitempty"`
	RumorType2     *Rumor        `json:"rumor_type2,omitempty"`
}

// Name resolves the NPC's display name. Nothing is resolved at construction
// time; data that is never displayed never touches the resource files.
func (n *GFNPC) Name(r resources.Resolver) (string, error) {
	return r.Lookup(n.IndividualName)
}

// Fixture is a piece of set dressing in a room: an NPC pinned to a location
// with a fidget animation.
type Fixture struct {
	NPC          string `json:"npc"`
	Location     string `json:"location"`
	FidgetScript string `json:"fidget_script"`
	Action       string `json:"action"`
}

// MRoom is a physical room at the owning base.
type MRoom struct {
	Nickname         string    `json:"nickname"`
	CharacterDensity int       `json:"character_density"`
	Fixtures         []Fixture `json:"fixtures,omitempty"`
}
