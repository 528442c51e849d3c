// Package resources defines the boundary with the string-resource lookup.
//
// Entities carry integer resource ids ("ids numbers") instead of display
// text. An id addresses a string table spread across the executable and its
// resource DLLs: the high half selects the slot (0 is the executable itself,
// DLLs count from 1 in declaration order) and the low half the entry within
// it. Decoding the PE string tables is outside this module; callers plug in
// their own Resolver, and entity accessors resolve text on demand so that
// never-displayed data never touches the resource files.
package resources
