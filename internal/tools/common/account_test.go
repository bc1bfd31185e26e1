package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAccountFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{
			name: "nil args",
			args: nil,
			want: "default",
		},
		{
			name: "missing account",
			args: map[string]interface{}{"days": 7},
			want: "default",
		},
		{
			name: "empty account",
			args: map[string]interface{}{"account": ""},
			want: "default",
		},
		{
			name: "explicit account",
			args: map[string]interface{}{"account": "work"},
			want: "work",
		},
		{
			name: "non-string account",
			args: map[string]interface{}{"account": 42},
			want: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetAccountFromArgs(tt.args))
		})
	}
}
