package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"123 Main St. #4B", "123-main-st-4b"},
		{"  42   Elm  Road ", "42-elm-road"},
		{"Unit 7-A, Oak Ave", "unit-7-a-oak-ave"},
		{"#.,!", ""},
		{"", ""},
		{"Ünïcode Street", "ncode-street"},
		{"line\tbreak\nstreet", "line-break-street"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"123 Main St. #4B",
		"900 N. Lake Shore Dr, Apt 12",
		"--weird -- spacing--",
		"ALL CAPS BLVD",
	}

	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "input %q", input)
	}
}
