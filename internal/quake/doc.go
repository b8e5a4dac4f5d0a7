// Package quake provides the earthquake record model shared by the scraper,
// storage, and CLI layers.
//
// A Record carries the six columns of the PHIVOLCS monthly bulletin table as
// raw page text, plus the Month/Year provenance tags taken from the fetch
// request. Values are deliberately not parsed into structured types here; the
// source formats its timestamps and coordinates inconsistently, so the catalog
// preserves them verbatim and only the ranking helpers interpret Magnitude
// numerically.
package quake
