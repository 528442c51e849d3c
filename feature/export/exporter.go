package export

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/san-e/flint/feature/missions"
)

// Exporter writes the folded mission model to a database.
type Exporter struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewExporter creates an exporter over an open connection.
func NewExporter(db *gorm.DB, logger *zap.Logger) *Exporter {
	return &Exporter{db: db, logger: logger}
}

const insertBatchSize = 200

// Migrate creates or updates the target tables.
func (e *Exporter) Migrate() error {
	return e.db.AutoMigrate(
		&BaseRow{}, &VendorRow{}, &BaseFactionRow{}, &NPCRow{},
		&RoomRow{}, &FactionPropsRow{}, &NewsRow{},
	)
}

// Export folds the model through the service and writes every table.
func (e *Exporter) Export(svc *missions.Service) error {
	bases, err := svc.Bases()
	if err != nil {
		return err
	}
	props, err := svc.FactionProps()
	if err != nil {
		return err
	}
	news, err := svc.News()
	if err != nil {
		return err
	}

	baseRows, vendorRows, factionRows, npcRows, roomRows := flattenBases(bases)
	if err := insert(e.db, baseRows); err != nil {
		return fmt.Errorf("exporting bases: %w", err)
	}
	if err := insert(e.db, vendorRows); err != nil {
		return fmt.Errorf("exporting vendors: %w", err)
	}
	if err := insert(e.db, factionRows); err != nil {
		return fmt.Errorf("exporting base factions: %w", err)
	}
	if err := insert(e.db, npcRows); err != nil {
		return fmt.Errorf("exporting npcs: %w", err)
	}
	if err := insert(e.db, roomRows); err != nil {
		return fmt.Errorf("exporting rooms: %w", err)
	}
	if err := insert(e.db, flattenFactionProps(props)); err != nil {
		return fmt.Errorf("exporting faction props: %w", err)
	}
	if err := insert(e.db, flattenNews(news)); err != nil {
		return fmt.Errorf("exporting news: %w", err)
	}

	e.logger.Info("mission model exported",
		zap.Int("bases", len(baseRows)),
		zap.Int("npcs", len(npcRows)),
		zap.Int("faction_props", len(props)),
	)
	return nil
}

func insert[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.CreateInBatches(rows, insertBatchSize).Error
}

// flattenBases turns the composite bases into flat per-kind rows, keeping
// declaration order.
func flattenBases(bases []*missions.MBase) ([]BaseRow, []VendorRow, []BaseFactionRow, []NPCRow, []RoomRow) {
	var (
		baseRows    []BaseRow
		vendorRows  []VendorRow
		factionRows []BaseFactionRow
		npcRows     []NPCRow
		roomRows    []RoomRow
	)
	for _, b := range bases {
		baseRows = append(baseRows, BaseRow{
			Nickname:     b.Nickname,
			LocalFaction: b.LocalFaction,
			Diff:         b.Diff,
			MsgIDPrefix:  b.MsgIDPrefix,
		})
		for _, v := range b.Vendors {
			vendorRows = append(vendorRows, VendorRow{
				BaseNickname: b.Nickname,
				MinOffers:    v.NumOffers[0],
				MaxOffers:    v.NumOffers[1],
			})
		}
		for _, f := range b.Factions {
			factionRows = append(factionRows, BaseFactionRow{
				BaseNickname:   b.Nickname,
				Faction:        f.Faction,
				Weight:         f.Weight,
				OffersMissions: f.OffersMissions,
			})
		}
		for _, n := range b.NPCs {
			npcRows = append(npcRows, NPCRow{
				BaseNickname:   b.Nickname,
				Nickname:       n.Nickname,
				Affiliation:    n.Affiliation,
				Voice:          n.Voice,
				Room:           n.Room,
				IndividualName: n.IndividualName,
			})
		}
		for _, r := range b.Rooms {
			roomRows = append(roomRows, RoomRow{
				BaseNickname:     b.Nickname,
				Nickname:         r.Nickname,
				CharacterDensity: r.CharacterDensity,
			})
		}
	}
	return baseRows, vendorRows, factionRows, npcRows, roomRows
}

// flattenFactionProps orders the profiles by affiliation for deterministic
// output.
func flattenFactionProps(props map[string]*missions.FactionProps) []FactionPropsRow {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]FactionPropsRow, 0, len(props))
	for _, k := range keys {
		p := props[k]
		rows = append(rows, FactionPropsRow{
			Affiliation:       p.Affiliation,
			Legality:          p.Legality,
			NicknamePlurality: p.NicknamePlurality,
			MsgIDPrefix:       p.MsgIDPrefix,
			JumpPreference:    p.JumpPreference,
			ScanAnnounce:      p.ScanAnnounce,
			ScanChance:        p.ScanChance,
		})
	}
	return rows
}

// flattenNews orders the index by base nickname for deterministic output.
func flattenNews(news map[string][]*missions.NewsItem) []NewsRow {
	keys := make([]string, 0, len(news))
	for k := range news {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows []NewsRow
	for _, base := range keys {
		for _, n := range news[base] {
			rows = append(rows, NewsRow{
				BaseNickname: base,
				Category:     n.Category,
				Headline:     n.Headline,
				Text:         n.Text,
				Icon:         n.Icon,
				Logo:         n.Logo,
				Audio:        n.Audio,
			})
		}
	}
	return rows
}
