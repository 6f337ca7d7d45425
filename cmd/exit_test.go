package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/haystacksec/kustodian/pkg/grc"
	"github.com/haystacksec/kustodian/pkg/templates"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown template", &templates.UnknownTemplateError{ID: "x"}, exitUnknownIdentifier},
		{"unknown control", &grc.UnknownControlError{ID: "9.9.9"}, exitUnknownIdentifier},
		{"unknown family", &grc.UnknownFamilyError{ID: "9.9"}, exitUnknownIdentifier},
		{"invalid flags", invalidFlags("bad combination"), exitInvalidFlags},
		{"write failure", &outputWriteError{err: errors.New("disk full")}, exitOutputWrite},
		{"wrapped write failure", fmt.Errorf("emit: %w", &outputWriteError{err: errors.New("disk full")}), exitOutputWrite},
		{"generic", errors.New("boom"), exitError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, exitCode(tc.err))
		})
	}
}
