package cqltour

import (
	"reflect"
	"testing"
)

func TestStringColumnWidths(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		cols []Column
		want []int
	}{
		{
			name: "no columns",
			rows: nil,
			cols: nil,
			want: []int{},
		},
		{
			name: "headers only",
			rows: nil,
			cols: []Column{{Name: "id"}, {Name: "name"}, {Name: "age"}},
			want: []int{2, 4, 3},
		},
		{
			name: "values wider than headers",
			rows: [][]string{
				{"123", "jon", "32"},
				{"456", "Anastasios", "25"},
			},
			cols: []Column{{Name: "id"}, {Name: "name"}, {Name: "age"}},
			want: []int{3, 10, 3},
		},
		{
			name: "headers wider than values",
			rows: [][]string{{"1", "Al", "5"}},
			cols: []Column{{Name: "id"}, {Name: "name"}, {Name: "age"}},
			want: []int{2, 4, 3},
		},
		{
			name: "short row contributes nothing for missing cells",
			rows: [][]string{
				{"aaaa"},
				{"b", "cccccc"},
			},
			cols: []Column{{Name: "x"}, {Name: "y"}},
			want: []int{4, 6},
		},
		{
			name: "multi byte runes counted as one",
			rows: [][]string{{"äöü", "日本語データ"}},
			cols: []Column{{Name: "a"}, {Name: "b"}},
			want: []int{3, 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringColumnWidths(tt.rows, tt.cols); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringColumnWidths() = %v, want %v", got, tt.want)
			}
		})
	}
}
