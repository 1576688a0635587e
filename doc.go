// Package datetime is a calendar date/time value library built around a
// fast, allocation-light parsing and formatting engine.
//
// A [DateTime] is a local wall-clock reading paired with a fixed offset from
// UTC; comparisons are offset-aware, so two readings with different offsets
// but the same instant compare equal. Values parse from a free-form family
// of ISO-8601-ish shapes with [Parse], or through an explicit token layout
// with [ParseLayout], and render back with [DateTime.String] or
// [DateTime.Format].
//
// The package deliberately stops at fixed offsets: there is no IANA timezone
// database, no DST transitions, and no leap seconds. Use [FromTime] and
// [DateTime.Time] to cross over to the standard library when zone rules are
// needed.
package datetime
