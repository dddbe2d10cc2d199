package cli

import (
	"strings"
	"testing"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	if cmd.Name != "svcurls" {
		t.Errorf("Name = %v, want svcurls", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}
	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}

	requiredFlags := []string{"namespace", "kubeconfig", "filter", "format", "output", "timeout"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			for _, n := range flag.Names() {
				if n == flagName {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}
}

func TestParseOutputFormatValue(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
		wantMsg string
	}{
		{"table", false, ""},
		{"json", false, ""},
		{"yaml", false, ""},
		{"yml", true, `did you mean "yaml"`},
		{"jsn", true, `did you mean "json"`},
		{"protobuf", true, "valid formats"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := parseOutputFormatValue(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.format)
				}
				if !strings.Contains(err.Error(), tt.wantMsg) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.format {
				t.Errorf("got %q, want %q", got, tt.format)
			}
		})
	}
}

func TestClosestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"yml", "yaml"},
		{"jsn", "json"},
		{"tabel", "table"},
		{"protobuf", ""},
	}
	for _, tt := range tests {
		if got := closestFormat(tt.in); got != tt.want {
			t.Errorf("closestFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
