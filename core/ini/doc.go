// Package ini reads Freelancer's INI dialect into an ordered stream of
// sections with typed field values.
//
// The dialect looks like standard INI but differs in ways that matter:
//   - the same section header may appear any number of times, and order
//     between sections is semantically significant;
//   - the same key may appear multiple times inside one section, and all
//     occurrences must be preserved in order;
//   - values are comma-separated scalars (int, float, bool or bare string)
//     with no quoting.
//
// Section and key names are case-insensitive and are lowercased on read.
// Comments start with ';' and run to the end of the line.
//
// # Typed Access
//
// Fields are exposed as Value tuples with typed accessors (Str, Int, Float,
// Bool, ...). An accessor called on a value of the wrong shape returns an
// error wrapping ErrSchemaMismatch, so callers can convert a section into a
// fixed-shape struct with explicit per-field checks instead of reflection.
package ini
