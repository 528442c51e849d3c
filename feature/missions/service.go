package missions

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/san-e/flint/core/ini"
	"github.com/san-e/flint/core/paths"
)

// Source files, relative to the installation root. The casing here is
// deliberately not trusted; every access goes through case resolution.
const (
	mbasesFile      = "DATA/MISSIONS/mbases.ini"
	factionPropFile = "DATA/MISSIONS/faction_prop.ini"
	newsFile        = "DATA/MISSIONS/news.ini"
)

// Service folds the mission files of the session's installation into typed
// collections and answers keyed lookups over them. Each collection is built
// on first query and cached until the session root changes.
//
// Not safe for concurrent use; see feature/server for the serialized
// wrapper.
type Service struct {
	session *paths.Session
	logger  *zap.Logger

	bases     []*MBase
	baseIndex map[string]*MBase
	factions  map[string]*FactionProps
	news      map[string][]*NewsItem
}

// NewService creates a mission service over the session. The service
// registers itself with the session so a root change drops every cached
// collection.
func NewService(session *paths.Session, logger *zap.Logger) *Service {
	s := &Service{session: session, logger: logger}
	session.OnInvalidate(s.invalidate)
	return s
}

func (s *Service) invalidate() {
	s.bases = nil
	s.baseIndex = nil
	s.factions = nil
	s.news = nil
}

func (s *Service) readSections(file string) ([]ini.Section, error) {
	path, err := s.session.ConstructPath(file)
	if err != nil {
		return nil, err
	}
	return ini.Read(path)
}

// Bases returns every mission base in declaration order.
func (s *Service) Bases() ([]*MBase, error) {
	if s.bases != nil {
		return s.bases, nil
	}
	sections, err := s.readSections(mbasesFile)
	if err != nil {
		return nil, fmt.Errorf("reading mission bases: %w", err)
	}
	bases, err := FoldBases(sections)
	if err != nil {
		return nil, fmt.Errorf("folding mission bases: %w", err)
	}
	index := make(map[string]*MBase, len(bases))
	for _, b := range bases {
		index[b.Nickname] = b
	}
	s.bases = bases
	s.baseIndex = index
	s.logger.Debug("mission bases folded", zap.Int("count", len(bases)))
	return s.bases, nil
}

// Base looks up one mission base by nickname.
func (s *Service) Base(nickname string) (*MBase, bool, error) {
	if _, err := s.Bases(); err != nil {
		return nil, false, err
	}
	b, ok := s.baseIndex[nickname]
	return b, ok, nil
}

// FactionProps returns every faction behavior profile keyed by affiliation.
func (s *Service) FactionProps() (map[string]*FactionProps, error) {
	if s.factions != nil {
		return s.factions, nil
	}
	sections, err := s.readSections(factionPropFile)
	if err != nil {
		return nil, fmt.Errorf("reading faction props: %w", err)
	}
	props, err := FoldFactionProps(sections)
	if err != nil {
		return nil, fmt.Errorf("folding faction props: %w", err)
	}
	s.factions = props
	s.logger.Debug("faction props folded", zap.Int("count", len(props)))
	return s.factions, nil
}

// FactionProp looks up one faction behavior profile by affiliation.
func (s *Service) FactionProp(affiliation string) (*FactionProps, bool, error) {
	props, err := s.FactionProps()
	if err != nil {
		return nil, false, err
	}
	p, ok := props[affiliation]
	return p, ok, nil
}

// News returns the index from base nickname to the news broadcast there.
func (s *Service) News() (map[string][]*NewsItem, error) {
	if s.news != nil {
		return s.news, nil
	}
	sections, err := s.readSections(newsFile)
	if err != nil {
		return nil, fmt.Errorf("reading news: %w", err)
	}
	index, err := FoldNews(sections)
	if err != nil {
		return nil, fmt.Errorf("folding news: %w", err)
	}
	s.news = index
	s.logger.Debug("news folded", zap.Int("bases", len(index)))
	return s.news, nil
}

// NewsFor returns the news broadcast at one base, which may be empty.
func (s *Service) NewsFor(base string) ([]*NewsItem, error) {
	index, err := s.News()
	if err != nil {
		return nil, err
	}
	return index[base], nil
}
