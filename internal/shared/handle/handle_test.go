package handle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Coffee Corner", "@coffee-corner"},
		{"@already", "@already"},
		{"  MiXeD Case  ", "@mixed-case"},
		{"عطور!!", "@"},
		{"a--b", "@a--b"},
		{"--edges--", "@edges"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("@coffee-corner"))
	assert.True(t, Valid("@a1_b2"))
	assert.False(t, Valid("coffee"))    // missing prefix
	assert.False(t, Valid("@ab"))       // too short
	assert.False(t, Valid("@-leading")) // cannot start with a dash
	assert.False(t, Valid("@"+strings.Repeat("a", 40))) // too long
}

func TestFromName(t *testing.T) {
	assert.Equal(t, "@coffee-corner", FromName("Coffee Corner"))
	// nothing usable in the name falls back
	assert.Equal(t, "@store", FromName("متجر"))
	assert.Equal(t, "@store", FromName(""))
}
