package missions

import (
	"fmt"

	"github.com/san-e/flint/core/ini"
)

// fieldReader converts one section into a fixed-shape struct field by field.
// The first schema violation sticks; callers read every field and check err
// once at the end.
type fieldReader struct {
	sec *ini.Section
	err error
}

func newFieldReader(sec *ini.Section) *fieldReader {
	return &fieldReader{sec: sec}
}

func (f *fieldReader) fail(key string, err error) {
	if f.err == nil {
		f.err = fmt.Errorf("[%s] %s: %w", f.sec.Name, key, err)
	}
}

func (f *fieldReader) missing(key string) {
	f.fail(key, fmt.Errorf("missing required field: %w", ini.ErrSchemaMismatch))
}

func (f *fieldReader) reqStr(key string) string {
	if f.err != nil {
		return ""
	}
	v, ok := f.sec.Last(key)
	if !ok {
		f.missing(key)
		return ""
	}
	s, err := v.Str()
	if err != nil {
		f.fail(key, err)
	}
	return s
}

func (f *fieldReader) optStr(key string) string {
	if f.err != nil || !f.sec.Has(key) {
		return ""
	}
	return f.reqStr(key)
}

func (f *fieldReader) reqInt(key string) int {
	if f.err != nil {
		return 0
	}
	v, ok := f.sec.Last(key)
	if !ok {
		f.missing(key)
		return 0
	}
	n, err := v.Int()
	if err != nil {
		f.fail(key, err)
	}
	return n
}

func (f *fieldReader) optInt(key string) *int {
	if f.err != nil || !f.sec.Has(key) {
		return nil
	}
	n := f.reqInt(key)
	if f.err != nil {
		return nil
	}
	return &n
}

func (f *fieldReader) optIntDefault(key string, def int) int {
	if n := f.optInt(key); n != nil {
		return *n
	}
	return def
}

func (f *fieldReader) optFloat(key string) float64 {
	if f.err != nil || !f.sec.Has(key) {
		return 0
	}
	v, _ := f.sec.Last(key)
	x, err := v.Float()
	if err != nil {
		f.fail(key, err)
	}
	return x
}

func (f *fieldReader) optBool(key string) bool {
	if f.err != nil || !f.sec.Has(key) {
		return false
	}
	v, _ := f.sec.Last(key)
	b, err := v.Bool()
	if err != nil {
		f.fail(key, err)
	}
	return b
}

func (f *fieldReader) reqPair(key string) [2]int {
	if f.err != nil {
		return [2]int{}
	}
	v, ok := f.sec.Last(key)
	if !ok {
		f.missing(key)
		return [2]int{}
	}
	p, err := v.IntPair()
	if err != nil {
		f.fail(key, err)
	}
	return p
}

func (f *fieldReader) optPair(key string) *[2]int {
	if f.err != nil || !f.sec.Has(key) {
		return nil
	}
	p := f.reqPair(key)
	if f.err != nil {
		return nil
	}
	return &p
}

// flatStrs returns the scalars of every occurrence of key, in order.
func (f *fieldReader) flatStrs(key string) []string {
	if f.err != nil {
		return nil
	}
	return f.sec.Flat(key)
}

// each runs fn over every occurrence of key.
func (f *fieldReader) each(key string, fn func(ini.Value) error) {
	if f.err != nil {
		return
	}
	for _, v := range f.sec.All(key) {
		if err := fn(v); err != nil {
			f.fail(key, err)
			return
		}
	}
}

func newMBase(sec *ini.Section) (*MBase, error) {
	f := newFieldReader(sec)
	b := &MBase{
		Nickname:     f.reqStr("nickname"),
		LocalFaction: f.reqStr("local_faction"),
		Diff:         f.reqInt("diff"),
		MsgIDPrefix:  f.optStr("msg_id_prefix"),
	}
	return b, f.err
}

func newMVendor(sec *ini.Section) (*MVendor, error) {
	f := newFieldReader(sec)
	v := &MVendor{NumOffers: f.reqPair("num_offers")}
	return v, f.err
}

func newBaseFaction(sec *ini.Section) (*BaseFaction, error) {
	f := newFieldReader(sec)
	bf := &BaseFaction{
		Faction:        f.reqStr("faction"),
		Weight:         f.optInt("weight"),
		OffersMissions: f.optBool("offers_missions"),
		NPCs:           f.flatStrs("npc"),
	}
	if f.err == nil && sec.Has("mission_type") {
		v, _ := sec.Last("mission_type")
		mt, err := parseMissionType(v)
		if err != nil {
			f.fail("mission_type", err)
		}
		bf.MissionType = mt
	}
	return bf, f.err
}

func parseMissionType(v ini.Value) (*MissionType, error) {
	if len(v) != 4 {
		return nil, fmt.Errorf("expected 4 scalars, got %d: %w", len(v), ini.ErrSchemaMismatch)
	}
	kind, err := ini.Value{v[0]}.Str()
	if err != nil {
		return nil, err
	}
	min, err := ini.Value{v[1]}.Float()
	if err != nil {
		return nil, err
	}
	max, err := ini.Value{v[2]}.Float()
	if err != nil {
		return nil, err
	}
	weight, err := ini.Value{v[3]}.Int()
	if err != nil {
		return nil, err
	}
	return &MissionType{Kind: kind, MinDiff: min, MaxDiff: max, Weight: weight}, nil
}

func newGFNPC(sec *ini.Section) (*GFNPC, error) {
	f := newFieldReader(sec)
	npc := &GFNPC{
		Nickname:       f.reqStr("nickname"),
		Body:           f.optStr("body"),
		Head:           f.optStr("head"),
		LeftHand:       f.optStr("lefthand"),
		RightHand:      f.optStr("righthand"),
		IndividualName: f.reqInt("individual_name"),
		Affiliation:    f.reqStr("affiliation"),
		Voice:          f.reqStr("voice"),
		Room:           f.optStr("room"),
		KnowDB:         f.optStr("knowdb"),
		RumorKnowDB:    f.optStr("rumorknowdb"),
		Accessory:      f.optStr("accessory"),
		BaseAppr:       f.optStr("base_appr"),
	}

	if f.err == nil && sec.Has("misn") {
		v, _ := sec.Last("misn")
		if len(v) != 3 {
			f.fail("misn", fmt.Errorf("expected 3 scalars, got %d: %w", len(v), ini.ErrSchemaMismatch))
		} else {
			kind, err1 := ini.Value{v[0]}.Str()
			min, err2 := ini.Value{v[1]}.Float()
			max, err3 := ini.Value{v[2]}.Float()
			for _, err := range []error{err1, err2, err3} {
				if err != nil {
					f.fail("misn", err)
					break
				}
			}
			if f.err == nil {
				npc.Misn = &MissionRange{Kind: kind, Min: min, Max: max}
			}
		}
	}

	f.each("bribe", func(v ini.Value) error {
		b, err := parseBribe(v)
		if err != nil {
			return err
		}
		npc.Bribes = append(npc.Bribes, b)
		return nil
	})
	f.each("rumor", func(v ini.Value) error {
		r, err := parseRumor(v)
		if err != nil {
			return err
		}
		npc.Rumors = append(npc.Rumors, r)
		return nil
	})

	if f.err == nil && sec.Has("know") {
		v, _ := sec.Last("know")
		ns, err := v.Ints()
		if err != nil || len(ns) != 4 {
			f.fail("know", fmt.Errorf("expected 4 ints: %w", ini.ErrSchemaMismatch))
		} else {
			npc.Know = &[4]int{ns[0], ns[1], ns[2], ns[3]}
		}
	}
	if f.err == nil && sec.Has("rumor_type2") {
		v, _ := sec.Last("rumor_type2")
		r, err := parseRumor(v)
		if err != nil {
			f.fail("rumor_type2", err)
		} else {
			npc.RumorType2 = &r
		}
	}
	return npc, f.err
}

func parseBribe(v ini.Value) (Bribe, error) {
	if len(v) != 3 {
		return Bribe{}, fmt.Errorf("expected 3 scalars, got %d: %w", len(v), ini.ErrSchemaMismatch)
	}
	faction, err := ini.Value{v[0]}.Str()
	if err != nil {
		return Bribe{}, err
	}
	price, err := ini.Value{v[1]}.Int()
	if err != nil {
		return Bribe{}, err
	}
	ids, err := ini.Value{v[2]}.Int()
	if err != nil {
		return Bribe{}, err
	}
	return Bribe{Faction: faction, Price: price, IDS: ids}, nil
}

func parseRumor(v ini.Value) (Rumor, error) {
	if len(v) != 4 {
		return Rumor{}, fmt.Errorf("expected 4 scalars, got %d: %w", len(v), ini.ErrSchemaMismatch)
	}
	start, err := ini.Value{v[0]}.Str()
	if err != nil {
		return Rumor{}, err
	}
	end, err := ini.Value{v[1]}.Str()
	if err != nil {
		return Rumor{}, err
	}
	weight, err := ini.Value{v[2]}.Int()
	if err != nil {
		return Rumor{}, err
	}
	ids, err := ini.Value{v[3]}.Int()
	if err != nil {
		return Rumor{}, err
	}
	return Rumor{Start: start, End: end, Weight: weight, IDS: ids}, nil
}

func newMRoom(sec *ini.Section) (*MRoom, error) {
	f := newFieldReader(sec)
	room := &MRoom{
		Nickname:         f.reqStr("nickname"),
		CharacterDensity: f.optIntDefault("character_density", 0),
	}
	f.each("fixture", func(v ini.Value) error {
		if len(v) != 4 {
			return fmt.Errorf("expected 4 scalars, got %d: %w", len(v), ini.ErrSchemaMismatch)
		}
		s := v.Strings()
		room.Fixtures = append(room.Fixtures, Fixture{
			NPC:          s[0],
			Location:     s[1],
			FidgetScript: s[2],
			Action:       s[3],
		})
		return nil
	})
	return room, f.err
}
