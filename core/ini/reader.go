package ini

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Read parses the file at path into its ordered section stream.
func Read(path string) ([]Section, error) {
	return read(path, nil)
}

// ReadFiltered parses the file at path keeping only sections whose
// (lowercased) name is in names. Order among the kept sections is preserved.
func ReadFiltered(path string, names ...string) ([]Section, error) {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[strings.ToLower(n)] = true
	}
	return read(path, keep)
}

func read(path string, keep map[string]bool) ([]Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ini file: %w", err)
	}
	defer f.Close()

	var sections []Section
	// Index of the section receiving fields. A fresh pointer is taken per
	// line because append can move the backing array.
	current := -1
	lineNo := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			end := strings.IndexByte(line, ']')
			if end < 0 {
				return nil, fmt.Errorf("%s:%d: unterminated section header", path, lineNo)
			}
			name := strings.ToLower(strings.TrimSpace(line[1:end]))
			if keep != nil && !keep[name] {
				current = -1
				continue
			}
			sections = append(sections, NewSection(name))
			current = len(sections) - 1
			continue
		}

		// Field lines outside any section (or inside a filtered-out one)
		// are skipped; the game does the same.
		if current < 0 {
			continue
		}

		key, raw, found := strings.Cut(line, "=")
		if !found {
			// Bare keys occur in the wild (lines missing a value); record
			// them with an empty tuple so Has still works.
			sections[current].Add(strings.ToLower(strings.TrimSpace(key)))
			continue
		}
		sections[current].Add(strings.ToLower(strings.TrimSpace(key)), parseValue(raw)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ini file: %w", err)
	}
	return sections, nil
}
