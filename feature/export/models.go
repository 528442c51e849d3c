package export

// BaseRow is one mission base.
type BaseRow struct {
	Nickname     string `gorm:"primaryKey"`
	LocalFaction string
	Diff         int
	MsgIDPrefix  string
}

// TableName implements the gorm naming override.
func (BaseRow) TableName() string { return "mission_bases" }

// VendorRow is one mission vendor, linked to its base by nickname.
type VendorRow struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	BaseNickname string `gorm:"index"`
	MinOffers    int
	MaxOffers    int
}

func (VendorRow) TableName() string { return "mission_vendors" }

// BaseFactionRow is one faction presence at a base.
type BaseFactionRow struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	BaseNickname   string `gorm:"index"`
	Faction        string
	Weight         *int
	OffersMissions bool
}

func (BaseFactionRow) TableName() string { return "base_factions" }

// NPCRow is one NPC stationed at a base.
type NPCRow struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	BaseNickname   string `gorm:"index"`
	Nickname       string
	Affiliation    string
	Voice          string
	Room           string
	IndividualName int
}

func (NPCRow) TableName() string { return "base_npcs" }

// RoomRow is one room at a base.
type RoomRow struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	BaseNickname     string `gorm:"index"`
	Nickname         string
	CharacterDensity int
}

func (RoomRow) TableName() string { return "base_rooms" }

// FactionPropsRow is one faction behavior profile.
type FactionPropsRow struct {
	Affiliation       string `gorm:"primaryKey"`
	Legality          string
	NicknamePlurality string
	MsgIDPrefix       string
	JumpPreference    string
	ScanAnnounce      bool
	ScanChance        float64
}

func (FactionPropsRow) TableName() string { return "faction_props" }

// NewsRow is one news item filed under one base; an item broadcast at n
// bases yields n rows, mirroring the in-memory index.
type NewsRow struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	BaseNickname string `gorm:"index"`
	Category     int
	Headline     int
	Text         int
	Icon         string
	Logo         string
	Audio        bool
}

func (NewsRow) TableName() string { return "news_items" }
