/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package packageid

import "testing"

func TestNormalizeOrg(t *testing.T) {
	tests := []struct {
		name string
		org  string
		want string
	}{
		{name: "empty", org: "", want: ""},
		{name: "adds @", org: "example/", want: "@example/"},
		{name: "adds /", org: "@example", want: "@example/"},
		{name: "adds @ and /", org: "example", want: "@example/"},
		{name: "already normalized", org: "@example/", want: "@example/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOrg(tt.org)
			if got != tt.want {
				t.Errorf("NormalizeOrg(%q) = %q, want %q", tt.org, got, tt.want)
			}
			if again := NormalizeOrg(got); again != got {
				t.Errorf("NormalizeOrg not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		packageID string
		wantScope string
		wantID    string
	}{
		{name: "empty", packageID: "", wantScope: "", wantID: ""},
		{name: "no scope", packageID: "example-package", wantScope: "", wantID: "example-package"},
		{name: "scope", packageID: "@example/package", wantScope: "@example/", wantID: "package"},
		{name: "deep with scope", packageID: "@example/package/deep/inside", wantScope: "@example/", wantID: "package/deep/inside"},
		{name: "deep without scope", packageID: "package/deep/inside", wantScope: "", wantID: "package/deep/inside"},
		{name: "lone scope segment", packageID: "@example", wantScope: "", wantID: "@example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.packageID)
			if got.Scope != tt.wantScope {
				t.Errorf("Parse(%q).Scope = %q, want %q", tt.packageID, got.Scope, tt.wantScope)
			}
			if got.ID != tt.wantID {
				t.Errorf("Parse(%q).ID = %q, want %q", tt.packageID, got.ID, tt.wantID)
			}
			if got.String() != tt.packageID {
				t.Errorf("Parse(%q).String() = %q", tt.packageID, got.String())
			}
		})
	}
}

func TestIsPathLike(t *testing.T) {
	for _, id := range []string{"/path/to/module", "./module", "../module", ".", ".."} {
		if !IsPathLike(id) {
			t.Errorf("IsPathLike(%q) = false, want true", id)
		}
	}
	for _, id := range []string{"module", "@scope/module", "module:./x"} {
		if IsPathLike(id) {
			t.Errorf("IsPathLike(%q) = true, want false", id)
		}
	}
}
