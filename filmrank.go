// Package filmrank builds per-year "most popular film" rankings from a
// paginated web catalog. Each listed film is enriched with metadata from
// its detail, stats and fans pages, filtered against view-count thresholds
// and a user blacklist, and sorted into a bounded list per year.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package filmrank
