package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixtureRootConfig = `[Freelancer]
data path = ..\DATA

[Resources]
dll = InfoCards.dll
dll = NameResources.dll

[Data]
missions = MISSIONS\mbases.ini
equipment = EQUIPMENT\engine_equip.ini, EQUIPMENT\misc_equip.ini
`

// fixtureInstallation builds a minimal installation. The data files are
// created with casing that differs from the references in the root
// configuration, so indexing exercises case resolution.
func fixtureInstallation(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"DATA", "DLLS", "EXE"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "EXE", "freelancer.ini"), []byte(fixtureRootConfig), 0644))
	for _, f := range []string{"Freelancer.exe", "InfoCards.dll", "NameResources.dll"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, "EXE", f), []byte{}, 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "DATA", "missions"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "DATA", "missions", "MBases.ini"), []byte("[MBase]\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "DATA", "equipment"), 0755))
	for _, f := range []string{"engine_equip.ini", "misc_equip.ini"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, "DATA", "equipment", f), []byte{}, 0644))
	}
	return root
}

func newTestSession(t *testing.T, strict bool) *Session {
	t.Helper()
	return NewSession(zap.NewNop(), strict)
}

func TestSetRoot(t *testing.T) {
	t.Run("Valid Installation", func(t *testing.T) {
		root := fixtureInstallation(t)
		s := newTestSession(t, false)

		require.NoError(t, s.SetRoot(root, false))
		assert.Equal(t, root, s.Root())
		assert.NotEmpty(t, s.Inis())
		assert.Contains(t, s.Inis(), "missions")
		assert.Len(t, s.Inis()["equipment"], 2)

		// Slot 0 is the executable; declared DLLs fill 1..n in order.
		require.Len(t, s.DLLs(), 3)
		assert.Equal(t, filepath.Join(root, "EXE", "Freelancer.exe"), s.DLLs()[0])
		assert.Equal(t, filepath.Join(root, "EXE", "InfoCards.dll"), s.DLLs()[1])
		assert.Equal(t, filepath.Join(root, "EXE", "NameResources.dll"), s.DLLs()[2])
	})

	t.Run("Missing Marker", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "DATA"), 0755))
		require.NoError(t, os.Mkdir(filepath.Join(root, "EXE"), 0755))

		err := newTestSession(t, false).SetRoot(root, false)
		assert.ErrorIs(t, err, ErrNotAnInstallation)
	})

	t.Run("Nonexistent Path", func(t *testing.T) {
		err := newTestSession(t, false).SetRoot(filepath.Join(t.TempDir(), "nope"), false)
		assert.ErrorIs(t, err, ErrNotAnInstallation)
	})

	t.Run("Discovery Requires Launcher", func(t *testing.T) {
		root := fixtureInstallation(t)
		s := newTestSession(t, false)

		assert.ErrorIs(t, s.SetRoot(root, true), ErrNotAnInstallation)

		require.NoError(t, os.WriteFile(filepath.Join(root, "DSLauncher.exe"), []byte{}, 0644))
		assert.NoError(t, s.SetRoot(root, true))
	})

	t.Run("Invalidation Hooks Run", func(t *testing.T) {
		root := fixtureInstallation(t)
		s := newTestSession(t, false)

		runs := 0
		s.OnInvalidate(func() { runs++ })

		require.NoError(t, s.SetRoot(root, false))
		require.NoError(t, s.SetRoot(root, false))
		assert.Equal(t, 2, runs)
	})
}

func TestConstructPath(t *testing.T) {
	t.Run("Corrects Casing", func(t *testing.T) {
		skipOnCaseInsensitiveFS(t)
		root := fixtureInstallation(t)
		s := newTestSession(t, false)
		require.NoError(t, s.SetRoot(root, false))

		got, err := s.ConstructPath("DATA/MISSIONS/mbases.ini")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "DATA", "missions", "MBases.ini"), got)
	})

	t.Run("Backslash Subpaths", func(t *testing.T) {
		skipOnCaseInsensitiveFS(t)
		root := fixtureInstallation(t)
		s := newTestSession(t, false)
		require.NoError(t, s.SetRoot(root, false))

		got, err := s.ConstructPath("DATA", `MISSIONS\mbases.ini`)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "DATA", "missions", "MBases.ini"), got)
	})

	t.Run("Lenient Fallback", func(t *testing.T) {
		root := fixtureInstallation(t)
		s := newTestSession(t, false)
		require.NoError(t, s.SetRoot(root, false))

		// Missing files come back uncorrected instead of failing.
		got, err := s.ConstructPath("DATA", "MISSIONS", "nonexistent.ini")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "DATA", "MISSIONS", "nonexistent.ini"), got)
	})

	t.Run("Strict Mode Fails", func(t *testing.T) {
		skipOnCaseInsensitiveFS(t)
		root := fixtureInstallation(t)
		s := newTestSession(t, true)
		require.NoError(t, s.SetRoot(root, false))

		_, err := s.ConstructPath("DATA", "MISSIONS", "nonexistent.ini")
		assert.ErrorIs(t, err, ErrSegmentNotFound)
	})
}
