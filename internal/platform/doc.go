package platform

// Package platform contains OS/platform integration and external tooling glue:
// merge tool discovery on the executable search path, destination directory
// checks, and revealing downloaded files in the system file manager.
