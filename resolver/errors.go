/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "errors"

// Sentinel errors for prefix resolution.
var (
	// ErrUnresolved is returned when no candidate was attempted to completion
	// and no not-found error was recorded.
	ErrUnresolved = errors.New("unable to resolve")
)
