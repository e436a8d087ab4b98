package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser_Parse(t *testing.T) {
	t.Parallel()
	parser := New()

	tests := []struct {
		name    string
		data    string
		want    Variables
		wantErr bool
	}{
		{
			name: "flat object",
			data: `{"name": "Alice", "age": 30}`,
			want: Variables{"name": "Alice", "age": json.Number("30")},
		},
		{
			name: "numbers keep their literal text",
			data: `{"pi": 3.140, "big": 12345678901234567890, "exp": 1e3}`,
			want: Variables{
				"pi":  json.Number("3.140"),
				"big": json.Number("12345678901234567890"),
				"exp": json.Number("1e3"),
			},
		},
		{
			name: "nested values",
			data: `{"active": true, "tags": ["a", "b"], "none": null, "db": {"port": 5432}}`,
			want: Variables{
				"active": true,
				"tags":   []any{"a", "b"},
				"none":   nil,
				"db":     map[string]any{"port": json.Number("5432")},
			},
		},
		{
			name: "duplicate key keeps last value",
			data: `{"a": 1, "a": 2}`,
			want: Variables{"a": json.Number("2")},
		},
		{
			name: "empty object",
			data: `{}`,
			want: Variables{},
		},
		{name: "array", data: `[1,2,3]`, wantErr: true},
		{name: "null", data: `null`, wantErr: true},
		{name: "syntax error", data: `{"a": }`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot decode JSON object")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
