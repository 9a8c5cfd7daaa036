// Package scenario replays YAML-described key sequences against a
// fresh engine and checks the resulting buffer and selection. The
// bundled testdata corpus doubles as the integration suite and as
// input for the -replay command line mode.
package scenario
