package workbook

import "testing"

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain", "Vertrieb", "Vertrieb"},
		{"Line break", "IT, Daten,\nAnalytics", "IT, Daten, Analytics"},
		{"CRLF", "a\r\nb", "a b"},
		{"Hyphen wrap", "Fach-\nrolle", "Fachrolle"},
		{"Hyphen wrap with umlaut", "Geschäfts-\n führung", "Geschäftsführung"},
		{"Hyphen before punctuation kept", "Projekt-, \nProgrammleitung", "Projekt-, Programmleitung"},
		{"Compound hyphen kept", "E-Mail", "E-Mail"},
		{"Collapse whitespace", "  a \t  b  ", "a b"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHeader(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeHeader(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildHeaders(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		width    int
		expected []string
	}{
		{
			name: "Joins rows per column",
			rows: [][]string{
				{"", "Führung", "Fach"},
				{"", "Leitung", "rolle"},
			},
			width:    3,
			expected: []string{"", "Führung Leitung", "Fach rolle"},
		},
		{
			name: "Skips blank cells",
			rows: [][]string{
				{"Frage", "", "HR"},
				{" ", "Vertrieb", ""},
			},
			width:    3,
			expected: []string{"Frage", "Vertrieb", "HR"},
		},
		{
			name:     "Pads to data width",
			rows:     [][]string{{"a"}},
			width:    3,
			expected: []string{"a", "", ""},
		},
		{
			name:     "Widest header row wins",
			rows:     [][]string{{"a", "b", "c"}},
			width:    1,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "Rejoins wraps across rows",
			rows:     [][]string{{"Produkt-"}, {"management"}},
			width:    1,
			expected: []string{"Produktmanagement"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildHeaders(tt.rows, tt.width)
			if len(got) != len(tt.expected) {
				t.Fatalf("BuildHeaders() = %q; want %q", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("BuildHeaders()[%d] = %q; want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
