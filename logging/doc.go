// Package logging builds the slog.Logger used by the library's DI wiring.
//
// The tree engine itself never logs; only the fx module in the root package
// emits records, and it does so through a logger from this package.
package logging
