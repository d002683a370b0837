// Package pageblocks imports scraped marketing pages into named
// content blocks ("Hero", "Cards", ...) shaped for a document-based
// publishing pipeline, converts them to markdown, and records the
// imported documents locally.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, rod/).
package pageblocks
