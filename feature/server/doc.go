// Package server exposes the mission model as a read-only JSON API.
//
// The missions service is not safe for concurrent use, so the handler
// serializes every request with a mutex; this is the external
// mutual-exclusion wrapper the core packages require from concurrent
// callers.
//
// # Endpoints
//
//   - GET /missions/bases : all mission bases.
//   - GET /missions/bases/:nickname : one base with its vendors, factions, NPCs and rooms.
//   - GET /missions/bases/:nickname/news : news broadcast at the base.
//   - GET /missions/factions : all faction behavior profiles.
//   - GET /missions/factions/:affiliation : one faction behavior profile.
package server
