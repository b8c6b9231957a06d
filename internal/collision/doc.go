// Package collision measures how many identifiers can be drawn before the
// first repeat. Identifiers can be truncated to their low bits so the birthday
// bound of a smaller keyspace is reachable in reasonable time and memory.
package collision
