// Package categories maps file extensions to category names.
//
// The map is ordered: categories match first to last, and the same
// extension listed under two categories resolves to the earlier one. The
// order survives a round trip through the per-directory rules file, which
// stores the map as a plain JSON object.
package categories
