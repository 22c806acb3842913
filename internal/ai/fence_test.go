package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripsaathi/tripsaathi/internal/ai"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"trailing comma in object", `{"a":1,}`, `{"a":1}`},
		{"trailing comma in array", `{"a":[1,2,]}`, `{"a":[1,2]}`},
		{"fence plus trailing comma", "```json\n{\"a\":[1,],}\n```", `{"a":[1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ai.StripFences(tt.in))
		})
	}
}
