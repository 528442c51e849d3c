package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/san-e/flint/core/ini"
)

// ErrNotAnInstallation is returned by SetRoot when the given directory does
// not look like a Freelancer installation.
var ErrNotAnInstallation = errors.New("directory is not a Freelancer installation")

// Top-level entries that identify an installation. Discovery adds its
// launcher executable on top of the vanilla set.
var (
	vanillaMarkers   = []string{"DATA", "DLLS", "EXE"}
	discoveryMarkers = []string{"DSLauncher.exe"}
)

// rootConfig is the file, relative to the installation root, that declares
// the ini category index and the string-resource DLL list.
const rootConfig = "EXE/freelancer.ini"

// Session owns everything derived from one installation root: the path
// resolution cache, the ini category index and the DLL slot index. SetRoot
// is the only reset operation; it discards all derived state and notifies
// registered invalidation hooks.
//
// Not safe for concurrent use.
type Session struct {
	logger *zap.Logger
	cache  *Cache

	// strict makes ConstructPath surface unresolved casing instead of
	// falling back to the uncorrected path.
	strict bool

	root      string
	discovery bool
	inis      map[string][]string
	dlls      map[int]string

	hooks []func()
}

// NewSession creates a session with no root set. With strict enabled,
// ConstructPath fails on paths whose casing cannot be resolved instead of
// silently returning the uncorrected candidate.
func NewSession(logger *zap.Logger, strict bool) *Session {
	return &Session{
		logger: logger,
		cache:  NewCache(),
		strict: strict,
	}
}

// Root returns the current installation root, or "" before SetRoot.
func (s *Session) Root() string {
	return s.root
}

// OnInvalidate registers fn to run whenever SetRoot replaces the session's
// derived state. Dependent caches (the mission model) hook in here.
func (s *Session) OnInvalidate(fn func()) {
	s.hooks = append(s.hooks, fn)
}

// SetRoot validates path as an installation root and rebuilds the category
// and DLL indices from its root configuration file. Any previously derived
// state, including the path resolution cache, is discarded, and all
// invalidation hooks run. With discovery set the root must additionally
// carry the Discovery launcher marker.
func (s *Session) SetRoot(path string, discovery bool) error {
	if err := checkInstallation(path, discovery); err != nil {
		return err
	}

	s.root = path
	s.discovery = discovery
	s.cache = NewCache()
	s.inis = make(map[string][]string)
	s.dlls = make(map[int]string)

	if err := s.generateIndex(); err != nil {
		return err
	}

	for _, fn := range s.hooks {
		fn()
	}
	s.logger.Info("installation root set",
		zap.String("root", path),
		zap.Bool("discovery", discovery),
		zap.Int("categories", len(s.inis)),
		zap.Int("dlls", len(s.dlls)),
	)
	return nil
}

// checkInstallation verifies the identifying top-level entries are present.
func checkInstallation(path string, discovery bool) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, ErrNotAnInstallation)
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Name()] = true
	}
	required := vanillaMarkers
	if discovery {
		required = append(append([]string{}, vanillaMarkers...), discoveryMarkers...)
	}
	for _, marker := range required {
		if !present[marker] {
			return fmt.Errorf("%s: missing %s: %w", path, marker, ErrNotAnInstallation)
		}
	}
	return nil
}

// ConstructPath forms an absolute path to a file under the installation root
// from a subpath relative to it, correcting its casing. In lenient mode an
// unresolvable path comes back uncorrected rather than failing, matching how
// the game itself shrugs off dangling references.
func (s *Session) ConstructPath(sub ...string) (string, error) {
	parts := make([]string, 0, len(sub)+1)
	parts = append(parts, s.root)
	for _, p := range sub {
		// Subpaths are quoted from the source files, which use Windows
		// separators.
		parts = append(parts, strings.ReplaceAll(p, `\`, "/"))
	}
	candidate := filepath.Join(parts...)
	resolved, err := s.cache.Resolve(candidate)
	if err != nil {
		if s.strict || !errors.Is(err, ErrSegmentNotFound) {
			return "", err
		}
		s.logger.Debug("case resolution failed, using uncorrected path",
			zap.String("path", candidate))
		return candidate, nil
	}
	return resolved, nil
}

// Inis returns the category index: declared ini category name to the ordered
// resolved paths of its files.
func (s *Session) Inis() map[string][]string {
	return s.inis
}

// DLLs returns the slot index: resource DLL slot number (1-based; slot 0 is
// the main executable) to its resolved path.
func (s *Session) DLLs() map[int]string {
	return s.dlls
}

// generateIndex builds the category and DLL indices from the root
// configuration file. Category entries come from the [Freelancer] and [Data]
// sections (the former overriding the latter on key collision); the DLL list
// comes from the [Resources] section.
func (s *Session) generateIndex() error {
	cfgPath, err := s.ConstructPath(rootConfig)
	if err != nil {
		return err
	}
	sections, err := ini.ReadFiltered(cfgPath, "freelancer", "resources", "data")
	if err != nil {
		return fmt.Errorf("reading root configuration: %w", err)
	}

	categories := make(map[string][]string)
	var dllNames []string
	for i := range sections {
		sec := &sections[i]
		switch sec.Name {
		case "resources":
			dllNames = append(dllNames, sec.Flat("dll")...)
		case "data", "freelancer":
			for _, key := range sec.Keys() {
				files := sec.Flat(key)
				if sec.Name == "freelancer" {
					// Root section wins over [Data] duplicates.
					categories[key] = files
				} else if _, taken := categories[key]; !taken {
					categories[key] = files
				}
			}
		}
	}

	// Slot 0 is implicitly the main executable; declared DLLs fill slots
	// from 1 in declaration order.
	exe, err := s.ConstructPath("EXE", "Freelancer.exe")
	if err != nil {
		return err
	}
	s.dlls[0] = exe
	for i, name := range dllNames {
		p, err := s.ConstructPath("EXE", name)
		if err != nil {
			return err
		}
		s.dlls[i+1] = p
	}

	for category, files := range categories {
		resolved := make([]string, 0, len(files))
		for _, f := range files {
			p, err := s.ConstructPath("DATA", f)
			if err != nil {
				return err
			}
			resolved = append(resolved, p)
		}
		s.inis[category] = resolved
	}
	return nil
}
