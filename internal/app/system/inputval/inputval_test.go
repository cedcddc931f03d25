package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@sub.domain.org", true},
		{"user@localhost", false}, // no dotted domain
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
		{"", false},
		{"User Name <user@example.com>", false}, // display name form rejected
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com/pic.png", true},
		{"http://cdn.example.com/a/b", true},
		{"ftp://example.com/file", false},
		{"javascript:alert(1)", false},
		{"/relative/path", false},
		{"", false},
		{"https://", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidHTTPURL(tt.input); got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidObjectID(t *testing.T) {
	if !IsValidObjectID("507f1f77bcf86cd799439011") {
		t.Error("valid hex rejected")
	}
	if IsValidObjectID("not-hex") {
		t.Error("garbage accepted")
	}
	if IsValidObjectID("507f1f77bcf86cd79943901") { // 23 chars
		t.Error("short hex accepted")
	}
}

func TestMaxLen(t *testing.T) {
	if !MaxLen("abc", 3) {
		t.Error("exact length rejected")
	}
	if MaxLen("abcd", 3) {
		t.Error("over length accepted")
	}
	// multibyte runes count as one character
	if !MaxLen("héllo", 5) {
		t.Error("rune counting is wrong")
	}
}
