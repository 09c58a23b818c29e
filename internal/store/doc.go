// Package store holds the three collections behind the application: the
// person directory, the content catalog, and the review ledger. All three
// live in one private in-memory SQLite database per Store, so a process (or
// test) starts from a clean slate every time and nothing survives exit.
//
// Cross-collection effects run inside one transaction: saving a review stamps
// the review timestamp and the content's last_reviewed field together.
// Deleting content does not cascade to its reviews; orphaned ledger entries
// stay readable and the aggregation layer renders them under a placeholder.
//
// Treat this package as the single source of truth for data semantics. Schema
// changes go in schema.sql together with a schemaVersion bump.
package store
