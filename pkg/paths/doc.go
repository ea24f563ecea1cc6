// Package paths provides centralized path handling for blockinsert.
//
// Directories follow the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/blockinsert (config.toml)
//   - Data: $XDG_DATA_HOME/blockinsert (default definition table)
//   - State: $XDG_STATE_HOME/blockinsert (blockinsert.log)
//
// # Environment Variables
//
//   - BLOCKINSERT_CONFIG_DIR: Override the config directory
//   - BLOCKINSERT_DATA_DIR: Override the data directory
//   - BLOCKINSERT_STATE_DIR: Override the state directory
//
// The XDG_* variables are read at call time so a process that changes them
// (tests do) sees the new locations.
package paths
