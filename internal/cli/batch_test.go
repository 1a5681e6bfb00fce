package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadInputs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "banana\n", []string{"banana"}},
		{"multiple", "a\nb\nc\n", []string{"a", "b", "c"}},
		{"blank lines skipped", "a\n\n\nb\n", []string{"a", "b"}},
		{"whitespace trimmed", "  a  \n\tb\n", []string{"a", "b"}},
		{"comments skipped", "# header\na\n# mid\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInputs(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("readInputs() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("readInputs() = %v, want %v", got, tt.want)
			}
		})
	}
}
