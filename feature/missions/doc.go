// Package missions builds the typed model of mission data: bases and their
// vendors, resident NPCs, rooms and faction presences (mbases.ini), faction
// behavior profiles (faction_prop.ini) and news broadcasts (news.ini).
//
// # Grouping
//
// mbases.ini has no parent/child keys; ownership is purely positional. An
// [MBase] section opens a composite entity and every [MVendor],
// [BaseFaction], [GF_NPC] and [MRoom] section that follows belongs to it
// until the next [MBase]. The game crashes on files that violate this
// ordering, so it is a hard precondition here too: FoldBases carries a
// single "current base" slot and fails with ErrMissingReference when a
// child appears before any base. Two record shapes are not real
// definitions and are dropped during folding: [BaseFaction] blocks carrying
// a reputation field, and [GF_NPC] blocks without a nickname.
//
// # Lifecycle
//
// The Service folds each file lazily on first query and caches the result
// until the session's installation root changes. Entities are never mutated
// after construction. The service does not lock; concurrent callers must
// serialize access (see feature/server).
package missions
