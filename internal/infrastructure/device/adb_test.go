package device

import "testing"

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain serial", "R58M12ABCDE", "R58M12ABCDE"},
		{"keeps underscore and dash", "emulator-5554_a", "emulator-5554_a"},
		{"strips colons and dots", "192.168.1.5:5555", "192168155555"},
		{"strips whitespace and shell characters", "abc; rm -rf /\n", "abcrm-rf"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeIdentifier(tt.in); got != tt.want {
				t.Errorf("SanitizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
