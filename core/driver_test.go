package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func minifyString(t *testing.T, input string, cfg Config) string {
	t.Helper()
	buf := []byte(input)
	n := Minify(buf, cfg, nil)
	return string(buf[:n])
}

func TestMinifyStructure(t *testing.T) {
	var tests = []struct{ input, expected string }{
		{`{ "a" : 1 , "b" : [ 2, 3.00 ] }`, `{"a":1,"b":[2,3]}`},
		{"{ \"a\": [1, 2] }", `{"a":[1,2]}`},
		{"[{ \"a\": [{\"x\": null}, true] }]", `[{"a":[{"x":null},true]}]`},
		{"{ \"a\": 1, \"b\": 2 }", `{"a":1,"b":2}`},
		{"  \t\n  true  \n", "true"},
		{"   ", ""},
		{"[1,,2]", "[1,2]"},
		{",5", "5"},
		{"[1}", "[1"},
		{"{\"a\":1]", "{\"a\":1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, minifyString(t, tt.input, Config{Precision: NoPrecision}), "input: %q", tt.input)
	}
}

func TestMinifyLiterals(t *testing.T) {
	var tests = []struct{ input, expected string }{
		{"true", "true"},
		{"false", "false"},
		{"null", "null"},
		{"tru", ""},  // mismatched literal: every unrecognized byte is dropped
		{"nul ", ""}, // same, plus the trailing space is dropped too
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, minifyString(t, tt.input, Config{Precision: NoPrecision}), "input: %q", tt.input)
	}
}

func TestMinifyStrings(t *testing.T) {
	var tests = []struct{ input, expected string }{
		{`"hello"`, `"hello"`},
		{`"a\"b"`, `"a\"b"`},
		{`"a\/b"`, `"a\/b"`},
		{`"tab\there"`, `"tab\there"`},
		{`"A"`, `"A"`},
		{"\"\t\"", "\"\t\""}, // a raw unescaped control byte passes through untouched
		{`"é"`, "\"\xc3\xa9\""},
		{`"😀"`, "\"\xf0\x9f\x98\x80\""},
		{`"\ud83d"`, "\"\xed\xa0\xbd\""},
		{`"\uZZZZ"`, `""`},
		{`"\q"`, `"q"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, minifyString(t, tt.input, Config{Precision: NoPrecision}), "input: %q", tt.input)
	}
}

func TestMinifyNumbers(t *testing.T) {
	var tests = []struct{ input, expected string }{
		{"0001.5e0", "1.5"},
		{"100000", "1E5"},
		{"0.00012", "1.2E-4"},
		{"-0.000", "0"},
		{"3.00", "3"},
		{"1.236", "1.236"},
		{"-5", "-5"},
		{"0", "0"},
		{"120.34e2", "12034"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, minifyString(t, tt.input, Config{Precision: NoPrecision}), "input: %q", tt.input)
	}
}

func TestMinifyNumbersRounded(t *testing.T) {
	var tests = []struct {
		input     string
		precision int64
		expected  string
	}{
		{"1.236", 2, "1.24"},
		{"9.95", 1, "10"},
		{"995", -1, "1E3"},
		{"0.0001", 2, "0"},
		{"50", -1, "50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, minifyString(t, tt.input, Config{Precision: tt.precision}), "input: %q precision: %d", tt.input, tt.precision)
	}
}

func TestMinifyNDJSON(t *testing.T) {
	assert.Equal(t, "1\n2\n3", minifyString(t, "1\n\n\n2\n3\n", Config{Precision: NoPrecision, Newlines: NewlinesNDJSON}))
	assert.Equal(t, "1\n\n\n2\n3\n", minifyString(t, "1\n\n\n2\n3\n", Config{Precision: NoPrecision, Newlines: NewlinesNDJSONPreserveBlanks}))
	assert.Equal(t, "12", minifyString(t, "1\n2", Config{Precision: NoPrecision, Newlines: NewlinesOff}))
}

func TestMinifyLengthNeverGrows(t *testing.T) {
	var inputs = []string{
		`{ "a" : 1 , "b" : [ 2, 3.00 ] }`,
		"100000",
		"0.00012",
		"995",
		`"😀"`,
	}
	for _, in := range inputs {
		buf := []byte(in)
		n := Minify(buf, Config{Precision: NoPrecision}, nil)
		assert.LessOrEqual(t, n, len(in), "input: %q", in)
	}
}

func TestDiagnostics(t *testing.T) {
	diags := &Diagnostics{}
	buf := []byte(`{"a":1]`)
	Minify(buf, Config{Precision: NoPrecision}, diags)
	assert.NotEmpty(t, diags.Items())
	assert.Equal(t, StructuralMismatch, diags.Items()[0].Kind)
}
