package header

import "testing"

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind("DataContract"),
		WithAPIVersion("datacontract.nvidia.com/v1alpha1"),
		WithMetadata("name", "users"),
	)

	if h.Kind != "DataContract" {
		t.Errorf("Kind = %q, want %q", h.Kind, "DataContract")
	}
	if h.APIVersion != "datacontract.nvidia.com/v1alpha1" {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, "datacontract.nvidia.com/v1alpha1")
	}
	if got := h.Name(); got != "users" {
		t.Errorf("Name() = %q, want %q", got, "users")
	}
}

func TestNewInitializesMetadata(t *testing.T) {
	h := New(WithKind("ValidationReport"))

	if h.Kind != "ValidationReport" {
		t.Errorf("Kind = %q, want %q", h.Kind, "ValidationReport")
	}
	if h.Metadata == nil {
		t.Error("expected Metadata map to be initialized")
	}
}

func TestMatchesKind(t *testing.T) {
	tests := []struct {
		name string
		kind string
		arg  string
		want bool
	}{
		{"exact", "DataContract", "DataContract", true},
		{"case insensitive", "datacontract", "DataContract", true},
		{"empty matches anything", "", "DataContract", true},
		{"mismatch", "Snapshot", "DataContract", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Header{Kind: tt.kind}
			if got := h.MatchesKind(tt.arg); got != tt.want {
				t.Errorf("MatchesKind(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestNameWithoutMetadata(t *testing.T) {
	h := &Header{}
	if got := h.Name(); got != "" {
		t.Errorf("Name() = %q, want empty", got)
	}
}
