package handler

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTechStackField_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"array", `["Go","Echo"]`, []string{"Go", "Echo"}},
		{"bare string", `"Go"`, []string{"Go"}},
		// A comma-separated string stays a single entry.
		{"comma string", `"Go, Echo"`, []string{"Go, Echo"}},
		{"empty array", `[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got techStackField
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual([]string(got), tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTechStackField_RejectsOtherShapes(t *testing.T) {
	for _, in := range []string{`42`, `{"a":1}`, `[1,2]`} {
		var got techStackField
		if err := json.Unmarshal([]byte(in), &got); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}
