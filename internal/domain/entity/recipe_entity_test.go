package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSteps(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "a\nb\nc", []string{"a", "b", "c"}},
		{"blank lines discarded", "a\n\n  \nb", []string{"a", "b"}},
		{"empty string", "", []string{}},
		{"only whitespace", " \n\t\n ", []string{}},
		{"single step", "panaskan wajan", []string{"panaskan wajan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSteps(tt.in))
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	steps := []string{"panaskan wajan", "goreng nasi", "sajikan"}
	assert.Equal(t, steps, SplitSteps(JoinSteps(steps)))
}

func TestInstructionSteps(t *testing.T) {
	r := &Recipe{Instructions: "satu\n\ndua"}
	assert.Equal(t, []string{"satu", "dua"}, r.InstructionSteps())
}

func TestNormalizeCategoryName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Makanan Utama", "MAKANAN_UTAMA"},
		{"  dessert  ", "DESSERT"},
		{"sarapan", "SARAPAN"},
		{"", ""},
		{"MAKANAN_UTAMA", "MAKANAN_UTAMA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCategoryName(tt.in), "input %q", tt.in)
	}
}

func TestDifficultyValid(t *testing.T) {
	assert.True(t, DifficultyMudah.Valid())
	assert.True(t, DifficultySedang.Valid())
	assert.True(t, DifficultySulit.Valid())
	assert.False(t, Difficulty("EASY").Valid())
	assert.False(t, Difficulty("").Valid())
}
