package discovery

import "testing"

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	files := []string{
		"interp/operator_test.go",
		"interp/arithmetic_test.go",
		"parser/literal_test.go",
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "empty pattern keeps all",
			pattern: "",
			want:    files,
		},
		{
			name:    "wildcard suffix",
			pattern: "*operator_test.go",
			want:    []string{"interp/operator_test.go"},
		},
		{
			name:    "wildcard substring",
			pattern: "*arithmetic*",
			want:    []string{"interp/arithmetic_test.go"},
		},
		{
			name:    "plain substring",
			pattern: "literal",
			want:    []string{"parser/literal_test.go"},
		},
		{
			name:    "question mark wildcard",
			pattern: "literal_test.g?",
			want:    []string{"parser/literal_test.go"},
		},
		{
			name:    "no match",
			pattern: "*nothing*",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.FilterByName(files, tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}
