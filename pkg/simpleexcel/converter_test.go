package simpleexcel

import (
	"reflect"
	"testing"
)

func TestNormalizeRows(t *testing.T) {
	type row struct {
		Name  string
		Count int
	}

	testCases := map[string]struct {
		input   interface{}
		output  []map[string]interface{}
		wantErr bool
	}{
		"slice of structs": {
			input: []row{{Name: "a", Count: 1}, {Name: "b", Count: 2}},
			output: []map[string]interface{}{
				{"Name": "a", "Count": 1},
				{"Name": "b", "Count": 2},
			},
		},
		"slice of struct pointers": {
			input: []*row{{Name: "a", Count: 1}},
			output: []map[string]interface{}{
				{"Name": "a", "Count": 1},
			},
		},
		"slice of maps": {
			input: []map[string]interface{}{{"K": "v"}},
			output: []map[string]interface{}{
				{"K": "v"},
			},
		},
		"nil data": {
			input:  nil,
			output: nil,
		},
		"empty slice": {
			input:  []row{},
			output: []map[string]interface{}{},
		},
		"not a slice": {
			input:   row{Name: "a"},
			wantErr: true,
		},
		"slice of scalars": {
			input:   []int{1, 2},
			wantErr: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := normalizeRows(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.output) {
				t.Errorf("normalizeRows = %#v, want %#v", got, tc.output)
			}
		})
	}
}

func TestNormalizeRowsSkipsUnexportedFields(t *testing.T) {
	type row struct {
		Public string
		secret string
	}

	got, err := normalizeRows([]row{{Public: "yes", secret: "no"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got[0]["secret"]; ok {
		t.Error("unexported fields must not leak into rows")
	}
	if got[0]["Public"] != "yes" {
		t.Errorf("Public = %v, want yes", got[0]["Public"])
	}
}
