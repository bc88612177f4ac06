package repository

import "testing"

func TestGuessCategoryName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"maslo ekstra", "Dairy"},
		{"mleko uht", "Dairy"},
		{"szynka wiejska", "Meat"},
		{"chleb zytni", "Bread"},
		{"sok pomaranczowy", "Beverages"},
		{"ziemniak mlody", "Vegetables"},
		{"jablko lobo", "Fruits"},
		{"mydlo w plynie", "Cleaning"},
		// Nothing recognizable stays uncategorized rather than guessing.
		{"pasta wasabi premium", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := guessCategoryName(tt.name); got != tt.want {
			t.Errorf("guessCategoryName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
