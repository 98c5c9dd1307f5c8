// Package config loads a³ tool resolution settings from a Lua file.
//
// Configs run in a sandboxed gopher-lua VM with the os, io, debug and module
// loading facilities removed. A read-only "platform" table describing the
// build agent is available, so a single shared config can branch per OS:
//
//	a3 = {
//	  workspace   = "/var/ci/workspace",
//	  target      = "arm",
//	  package_dir = platform.is_windows and "C:/a3/packages" or "/srv/a3/packages",
//	  launcher    = platform.when(not platform.is_macos, "/opt/absint/a3/bin"),
//	}
//
// Recognized fields are workspace, target, package_dir, launcher and os.
// Unknown fields are rejected so typos surface early.
package config
