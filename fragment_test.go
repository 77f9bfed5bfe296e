package carousel

import "testing"

func TestSectionFromURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://example.com/work#about", "about"},
		{"https://example.com/work#/about", "about"},
		{"/work?sectionId=contact", "contact"},
		{"/work?sectionId=/contact", "contact"},
		{"/work?sectionId=contact#about", "about"},
		{"/work", ""},
		{"", ""},
		{"%zz", ""},
	}
	for _, tt := range tests {
		if got := SectionFromURL(tt.raw); got != tt.want {
			t.Errorf("SectionFromURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
