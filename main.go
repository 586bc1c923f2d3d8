/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command resolve-with-prefix resolves node modules by shorthand names.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/chrisblossom/resolve-with-prefix/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
