package sanitize

import (
	"reflect"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Panadería San José",
			want:  "Panadería San José",
		},
		{
			name:  "html tags stripped",
			input: "hola <b>mundo</b> <script>alert(1)</script>",
			want:  "hola mundo alert(1)",
		},
		{
			name:  "javascript uri removed",
			input: "JavaScript:alert(1)",
			want:  "alert(1)",
		},
		{
			name:  "event handler removed",
			input: `x onclick= y`,
			want:  "x  y",
		},
		{
			name:  "sql keywords removed",
			input: "DROP TABLE users; select * from x",
			want:  "TABLE users;  * from x",
		},
		{
			name:  "sql comments removed",
			input: "a--b/*c*/d",
			want:  "abcd",
		},
		{
			name:  "tautology removed",
			input: `name' OR 1=1`,
			want:  "name",
		},
		{
			name:  "keyword reformed by comment strip is removed too",
			input: "DR--OP TABLE",
			want:  "TABLE",
		},
		{
			name:  "null bytes and whitespace",
			input: "  hola\x00  ",
			want:  "hola",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.input, MaxValueLen); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestString_NoTagSequences(t *testing.T) {
	inputs := []string{
		"<div><p>x</p></div>",
		"a<b",
		"<img src=x onerror=alert(1)>",
		"<<nested>>",
	}
	for _, in := range inputs {
		got := String(in, MaxValueLen)
		if reTag.MatchString(got) {
			t.Errorf("String(%q) = %q still contains a tag sequence", in, got)
		}
	}
}

func TestString_Idempotent(t *testing.T) {
	inputs := []string{
		"hola mundo",
		"<b>negrita</b>",
		"SESELECTLECT",
		"a--b",
		"' OR 1=1 --",
		strings.Repeat("x", 3000),
	}
	for _, in := range inputs {
		once := String(in, MaxValueLen)
		twice := String(once, MaxValueLen)
		if once != twice {
			t.Errorf("String not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestString_Truncation(t *testing.T) {
	in := strings.Repeat("á", 150)
	got := String(in, 100)
	if n := len([]rune(got)); n != 100 {
		t.Errorf("rune length = %d, want 100", n)
	}
}

func TestDeep(t *testing.T) {
	in := map[string]any{
		"name":     "<b>Ana</b>",
		"sections": []any{"hero", "<i>servicios</i>"},
		"nested": map[string]any{
			"note<x>": "drop--it",
		},
		"count": float64(3),
		"flag":  true,
	}
	want := map[string]any{
		"name":     "Ana",
		"sections": []any{"hero", "servicios"},
		"nested": map[string]any{
			"note": "dropit",
		},
		"count": float64(3),
		"flag":  true,
	}
	got := Deep(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Deep() = %#v, want %#v", got, want)
	}
}

func TestDeepMap_Nil(t *testing.T) {
	got := DeepMap(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("DeepMap(nil) = %v, want empty map", got)
	}
}
