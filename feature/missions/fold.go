package missions

import (
	"errors"
	"fmt"

	"github.com/san-e/flint/core/ini"
)

// ErrMissingReference is returned when a child record appears in the stream
// before any owning [MBase] section. The ordering is a precondition of the
// source format (the game crashes on violations), so no partial result is
// produced.
var ErrMissingReference = errors.New("child record appeared before any mbase section")

// FoldBases folds an ordered section stream into its composite bases. Each
// [MBase] opens a new base that owns every following child section until
// the next [MBase]. Section kinds outside the mbases vocabulary are
// ignored. Bases come back in declaration order, and each base's child
// lists preserve source order.
func FoldBases(sections []ini.Section) ([]*MBase, error) {
	var bases []*MBase
	var current *MBase

	for i := range sections {
		sec := &sections[i]
		if sec.Name != "mbase" && current == nil {
			switch sec.Name {
			case "mvendor", "basefaction", "gf_npc", "mroom":
				return nil, fmt.Errorf("[%s]: %w", sec.Name, ErrMissingReference)
			}
		}
		switch sec.Name {
		case "mbase":
			base, err := newMBase(sec)
			if err != nil {
				return nil, err
			}
			bases = append(bases, base)
			current = base
		case "mvendor":
			vendor, err := newMVendor(sec)
			if err != nil {
				return nil, err
			}
			current.Vendors = append(current.Vendors, vendor)
		case "basefaction":
			// Blocks carrying a reputation field set standings, they are
			// not faction presences.
			if sec.Has("reputation") {
				continue
			}
			faction, err := newBaseFaction(sec)
			if err != nil {
				return nil, err
			}
			current.Factions = append(current.Factions, faction)
		case "gf_npc":
			// A block without a nickname defines nothing.
			if !sec.Has("nickname") {
				continue
			}
			npc, err := newGFNPC(sec)
			if err != nil {
				return nil, err
			}
			current.NPCs = append(current.NPCs, npc)
		case "mroom":
			room, err := newMRoom(sec)
			if err != nil {
				return nil, err
			}
			current.Rooms = append(current.Rooms, room)
		}
	}
	return bases, nil
}
