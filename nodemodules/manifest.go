/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package nodemodules

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"

	rfs "github.com/chrisblossom/resolve-with-prefix/fs"
)

var errMainNotString = errors.New("\"main\" must be a string")

// errMainCycle is reported when "main" leads back to a directory already visited.
var errMainCycle = errors.New("\"main\" cycle")

// manifest is the subset of package.json that resolution reads.
type manifest struct {
	Main json.RawMessage `json:"main"`
}

// readMain returns the "main" field of the package.json at path.
// A missing manifest or missing/null main yields "".
func readMain(filesystem rfs.FileSystem, path string) (string, error) {
	isFile, _, err := rfs.Kind(filesystem, path)
	if err != nil {
		return "", err
	}
	if !isFile {
		return "", nil
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return "", err
	}

	// Tolerate comments and trailing commas in hand-edited manifests.
	var m manifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return "", &ManifestError{Path: path, Err: err}
	}

	if len(m.Main) == 0 || string(m.Main) == "null" {
		return "", nil
	}

	var main string
	if err := json.Unmarshal(m.Main, &main); err != nil {
		return "", &ManifestError{Path: path, Err: fmt.Errorf("%w, got %s", errMainNotString, m.Main)}
	}
	return main, nil
}
