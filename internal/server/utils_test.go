package server

import "testing"

func TestNormalizeRequestPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/index.html", "/index.html"},
		{"index.html", "/index.html"},
		{"/a/./b", "/a/b"},
		{"/a//b", "/a/b"},
		{"/a/../b", "/b"},
		{"/../etc/passwd", "/etc/passwd"},
	}

	for _, tt := range tests {
		if got := normalizeRequestPath(tt.in); got != tt.want {
			t.Errorf("normalizeRequestPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRequestPath(t *testing.T) {
	valid := []string{"/", "/index.html", "/css/style.css", "/a.b/c"}
	for _, p := range valid {
		if err := validateRequestPath(p); err != nil {
			t.Errorf("validateRequestPath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"index.html", "/../secret", "/a/../../b", "/a\x00b"}
	for _, p := range invalid {
		if err := validateRequestPath(p); err == nil {
			t.Errorf("validateRequestPath(%q) = nil, want error", p)
		}
	}
}
