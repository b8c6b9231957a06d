// Package main provides the tinyid command. It prints new identifiers,
// decodes identifiers typed in by hand, and measures how many identifiers can
// be drawn before the first repeat.
package main
