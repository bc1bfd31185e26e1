package logging

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeCalendarID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, got string)
	}{
		{
			name:  "empty stays empty",
			input: "",
			check: func(t *testing.T, got string) { assert.Equal(t, "", got) },
		},
		{
			name:  "primary is not an identity and passes through",
			input: "primary",
			check: func(t *testing.T, got string) { assert.Equal(t, "primary", got) },
		},
		{
			name:  "email is hashed",
			input: "owner@example.com",
			check: func(t *testing.T, got string) {
				assert.True(t, strings.HasPrefix(got, "cal:"))
				assert.NotContains(t, got, "owner")
				assert.NotContains(t, got, "example.com")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, AnonymizeCalendarID(tt.input))
		})
	}
}

func TestAnonymizeCalendarIDIsStable(t *testing.T) {
	a := AnonymizeCalendarID("owner@example.com")
	b := AnonymizeCalendarID("owner@example.com")
	assert.Equal(t, a, b, "same input must hash identically for log correlation")

	c := AnonymizeCalendarID("other@example.com")
	assert.NotEqual(t, a, c)
}

func TestErrWithNil(t *testing.T) {
	attr := Err(nil)
	assert.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Empty(t, attr.Value.Group())
}

func TestErrWithError(t *testing.T) {
	attr := Err(errors.New("boom"))
	assert.Equal(t, KeyError, attr.Key)
	assert.Equal(t, "boom", attr.Value.String())
}

func TestStatusAttrs(t *testing.T) {
	assert.Equal(t, KeyStatus, Status(StatusSuccess).Key)
	assert.Equal(t, StatusSuccess, Status(StatusSuccess).Value.String())
	assert.Equal(t, KeyOperation, Operation("compute").Key)
	assert.Equal(t, KeyAttendeeZone, AttendeeZone("America/New_York").Key)
}
