// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package echo

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"plain word", "hello", "hello"},
		{"path", "/usr/local/bin", "/usr/local/bin"},
		{"flag", "-la", "-la"},
		{"empty", "", `""`},
		{"space", "hello world", "'hello world'"},
		{"tab", "a\tb", `'a\tb'`},
		{"newline", "a\nb", `'a\nb'`},
		{"glob star", "*.go", "'*.go'"},
		{"variable", "$HOME", "'$HOME'"},
		{"pipe char", "a|b", "'a|b'"},
		{"redirect", "a>b", "'a>b'"},
		{"semicolon", "a;b", "'a;b'"},
		{"equals", "key=value", "'key=value'"},
		{"double quote", `say "hi"`, `'say "hi"'`},
		{"single quote", "it's", `"it's"`},
		{"single and double quotes", `it's "fine"`, `"it's \"fine\""`},
		{"backslash with single quote", `C:\path's`, `"C:\\path's"`},
		{"null byte", "a\x00b", `'a\0b'`},
		{"control char", "a\x1bb", `'a\x1bb'`},
		{"unicode", "héllo", "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.arg); got != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}
