/*
Package slogtint is a slog handler for Go that styles console output by log level. It wraps an existing
slog.Handler, puts a terminal style sequence in front of each record's message (chosen from a profile of
level thresholds) and a reset sequence after it, and then hands the record to the wrapped handler.

Profiles are plain values. A level is styled by the profile entry with the highest threshold that is less
than or equal to the level, so custom levels between the standard ones work without extra entries.

Please see https://github.com/apperia-de/slogtint for more details.
*/
package slogtint
