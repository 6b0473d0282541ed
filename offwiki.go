// Package offwiki harvests a fixed set of Wikipedia articles and rewrites
// each one into a minimal offline HTML page. Navigation chrome, reference
// apparatus and non-article sections are removed, and only links to other
// harvested articles stay clickable.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package offwiki
