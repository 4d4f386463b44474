package textcase_test

import (
	"testing"

	"wordfreq/internal/textcase"
)

func TestLower(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"cat", "cat"},
		{"The", "the"},
		{"WELL-Known", "well-known"},
		{"ÉCOLE", "école"},
		{"ΟΔΟΣ", "οδος"},
	}
	folder := textcase.NewFolder()
	for _, tc := range cases {
		if got := folder.Lower(tc.in); got != tc.want {
			t.Errorf("Folder.Lower(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if got := textcase.Lower(tc.in); got != tc.want {
			t.Errorf("Lower(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
