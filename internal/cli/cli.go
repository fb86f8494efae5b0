// Package cli implements the go-fortune command-line interface.
//
// # Commands
//
//   - run: compute a diagram and print its edges as text or JSON
//   - verify: compute a diagram and check every edge against its sites
//   - serve: start the HTTP viewer
//
// Sites come from a TOML scene file (--scene) or are generated (--random,
// --grid). All commands accept --verbose (-v) for debug-level logging; the
// logger travels to the commands through context.Context.
package cli
