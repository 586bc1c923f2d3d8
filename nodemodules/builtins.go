/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package nodemodules

import "strings"

// coreModules are Node.js built-ins; they resolve to their own name.
// Only the subpaths Node itself exposes are listed.
var coreModules = map[string]bool{
	"assert":              true,
	"async_hooks":         true,
	"buffer":              true,
	"child_process":       true,
	"cluster":             true,
	"console":             true,
	"constants":           true,
	"crypto":              true,
	"dgram":               true,
	"diagnostics_channel": true,
	"dns":                 true,
	"domain":              true,
	"events":              true,
	"fs":                  true,
	"http":                true,
	"http2":               true,
	"https":               true,
	"inspector":           true,
	"module":              true,
	"net":                 true,
	"os":                  true,
	"path":                true,
	"perf_hooks":          true,
	"process":             true,
	"punycode":            true,
	"querystring":         true,
	"readline":            true,
	"repl":                true,
	"stream":              true,
	"string_decoder":      true,
	"sys":                 true,
	"timers":              true,
	"tls":                 true,
	"trace_events":        true,
	"tty":                 true,
	"url":                 true,
	"util":                true,
	"v8":                  true,
	"vm":                  true,
	"wasi":                true,
	"worker_threads":      true,
	"zlib":                true,

	"assert/strict":     true,
	"dns/promises":      true,
	"fs/promises":       true,
	"path/posix":        true,
	"path/win32":        true,
	"readline/promises": true,
	"stream/consumers":  true,
	"stream/promises":   true,
	"stream/web":        true,
	"timers/promises":   true,
	"util/types":        true,
}

// IsCore reports whether id names a Node.js built-in, with or without "node:".
func IsCore(id string) bool {
	if name, ok := strings.CutPrefix(id, "node:"); ok {
		id = name
	}
	return coreModules[id]
}
