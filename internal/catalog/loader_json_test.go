// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeMovies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      []Entry
		wantErrIs error
		wantErr   bool
	}{
		{
			name:  "records",
			input: `[{"title":"Avatar","overview":"Blue people."},{"title":"Heat"}]`,
			want:  []Entry{{Title: "Avatar", Overview: "Blue people."}, {Title: "Heat"}},
		},
		{
			name:  "columns ordered numerically",
			input: `{"title":{"10":"Third","2":"Second","0":"First"},"overview":{"0":"a","2":null,"10":"c"}}`,
			want:  []Entry{{Title: "First", Overview: "a"}, {Title: "Second"}, {Title: "Third", Overview: "c"}},
		},
		{
			name:      "record without title",
			input:     `[{"overview":"orphan"}]`,
			wantErrIs: ErrDataIntegrity,
		},
		{
			name:      "columns with non-numeric index",
			input:     `{"title":{"a":"First"}}`,
			wantErrIs: ErrDataIntegrity,
		},
		{
			name:      "blank document",
			input:     "  \n",
			wantErrIs: ErrEmptyCatalog,
		},
		{
			name:    "scalar document",
			input:   `"movies"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeMovies(strings.NewReader(tt.input))
			if tt.wantErrIs != nil {
				if !errors.Is(err, tt.wantErrIs) {
					t.Fatalf("DecodeMovies() error = %v, want %v", err, tt.wantErrIs)
				}
				return
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("DecodeMovies() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeMovies() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeMovies() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	movies := writeFile(t, dir, "movies.json", `[{"title":"A","overview":"first"},{"title":"B"}]`)
	matrix := writeFile(t, dir, "similarity.json", `[[1,0.25],[0.25,1]]`)
	shortMatrix := writeFile(t, dir, "short.json", `[[1,0.25]]`)

	c, err := LoadJSON(movies, matrix)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if got := c.OverviewOf("B"); got != DefaultOverview {
		t.Errorf("OverviewOf(B) = %q, want default", got)
	}
	if got := c.Row(0)[1]; got != 0.25 {
		t.Errorf("Row(0)[1] = %v, want 0.25", got)
	}

	if _, err := LoadJSON(movies, shortMatrix); !errors.Is(err, ErrDataIntegrity) {
		t.Errorf("LoadJSON() with short matrix error = %v, want ErrDataIntegrity", err)
	}
	if _, err := LoadJSON(filepath.Join(dir, "missing.json"), matrix); err == nil {
		t.Error("LoadJSON() with missing movies file should fail")
	}
}
