package stringsx

import "testing"

func TestHasPathPrefix(t *testing.T) {
	testCases := []struct {
		name     string
		p        string
		prefix   string
		expected bool
	}{
		{
			name:     "Path equals prefix",
			p:        "example.com/mod",
			prefix:   "example.com/mod",
			expected: true,
		},
		{
			name:     "Path is under prefix",
			p:        "example.com/mod/internal/demo",
			prefix:   "example.com/mod",
			expected: true,
		},
		{
			name:     "Prefix with trailing slash",
			p:        "example.com/mod/model",
			prefix:   "example.com/mod/",
			expected: true,
		},
		{
			name:     "Prefix ends in the middle of an element",
			p:        "example.com/module",
			prefix:   "example.com/mod",
			expected: false,
		},
		{
			name:     "Unrelated path",
			p:        "google.golang.org/protobuf/proto",
			prefix:   "example.com/mod",
			expected: false,
		},
		{
			name:     "Empty prefix",
			p:        "example.com/mod",
			prefix:   "",
			expected: false,
		},
		{
			name:     "Empty path",
			p:        "",
			prefix:   "example.com/mod",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := HasPathPrefix(tc.p, tc.prefix)
			if result != tc.expected {
				t.Errorf("HasPathPrefix(%q, %q) = %v; want %v", tc.p, tc.prefix, result, tc.expected)
			}
		})
	}
}
