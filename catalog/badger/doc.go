// Package badger persists catalog snapshots in BadgerDB. Values are
// MUS-encoded assessments keyed by BigEndian catalog position, so a prefix
// iteration reads the catalog back in source order. A secondary index maps
// assessment keys to positions for direct lookups.
package badger
