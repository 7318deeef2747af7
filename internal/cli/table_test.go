package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Metric", "Value"})
	table.AddRow([]string{"Number of words"})
	table.AddRow([]string{"Missing scores", "0", "extra"})

	want := [][]string{
		{"Number of words", ""},
		{"Missing scores", "0"},
	}
	if diff := cmp.Diff(want, table.rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRender(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		want    string
	}{
		{
			name:    "report",
			headers: []string{"Metric", "Value"},
			rows: [][]string{
				{"Number of words", "5102"},
				{"Score range", "[0,5101]"},
			},
			want: "" +
				"Metric           Value\n" +
				"---------------  --------\n" +
				"Number of words  5102\n" +
				"Score range      [0,5101]\n",
		},
		{
			name:    "accented words",
			headers: []string{"Word", "Score"},
			rows: [][]string{
				{"café", "1"},
				{"dog", "2"},
			},
			want: "" +
				"Word  Score\n" +
				"----  -----\n" +
				"café  1\n" +
				"dog   2\n",
		},
		{
			name:    "no rows",
			headers: []string{"Column1", "Column2"},
			want: "" +
				"Column1  Column2\n" +
				"-------  -------\n",
		},
		{
			name: "no headers",
			rows: [][]string{{"ignored"}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.headers)
			for _, row := range tt.rows {
				table.AddRow(row)
			}
			if diff := cmp.Diff(tt.want, table.Render()); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableWrapping(t *testing.T) {
	table := NewTable([]string{"Rule", "Description"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"tooShort", "drops single letters"})

	want := "" +
		"Rule      Description\n" +
		"--------  -----------\n" +
		"tooShort  drops\n" +
		"          single\n" +
		"          letters\n"
	if diff := cmp.Diff(want, table.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"naïve", 6, "naïve "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"no limit at all", 0, []string{"no limit at all"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"ab ééééé", 3, []string{"ab", "ééé", "éé"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, wrapText(tt.text, tt.width)); diff != "" {
			t.Errorf("wrapText(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
		}
	}
}
