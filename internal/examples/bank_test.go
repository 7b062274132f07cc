package examples

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	bank := Default()

	require.Greater(t, bank.Count(), 0)
	assert.NotEmpty(t, bank.Rule())

	for i := 0; i < bank.Count(); i++ {
		ex, err := bank.Get(i)
		require.NoError(t, err)
		assert.Contains(t, ex.Text, " и ", "example %d has no split point", i)
		assert.NotEmpty(t, ex.Explanation, "example %d has no explanation", i)
	}
}

func TestGetOutOfRange(t *testing.T) {
	bank := Default()

	_, err := bank.Get(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = bank.Get(bank.Count())
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestCorrected(t *testing.T) {
	tests := []struct {
		name string
		ex   Example
		want string
	}{
		{
			name: "comma inserted before conjunction",
			ex:   Example{Text: "Наступила ночь и город затих", NeedsComma: true},
			want: "Наступила ночь, и город затих",
		},
		{
			name: "comma inserted before last conjunction",
			ex:   Example{Text: "Он пел и плясал и все смеялись", NeedsComma: true},
			want: "Он пел и плясал, и все смеялись",
		},
		{
			name: "no comma needed returns text verbatim",
			ex:   Example{Text: "Он открыл окно и вдохнул свежий воздух", NeedsComma: false},
			want: "Он открыл окно и вдохнул свежий воздух",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Corrected(tt.ex))
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examples.txt")
	content := strings.Join([]string{
		"Наступила ночь и город затих\t1\tДве основы — запятая нужна.",
		"",
		"Кот поел и уснул\t0\tОднородные сказуемые.",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	bank, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, 2, bank.Count())

	first, err := bank.Get(0)
	require.NoError(t, err)
	assert.True(t, first.NeedsComma)
	assert.Equal(t, "Наступила ночь и город затих", first.Text)

	second, err := bank.Get(1)
	require.NoError(t, err)
	assert.False(t, second.NeedsComma)
}

func TestParseFileRejectsBadLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing fields", "Наступила ночь и город затих\t1"},
		{"bad answer", "Наступила ночь и город затих\t2\tобъяснение"},
		{"no conjunction", "Наступила ночь\t1\tобъяснение"},
		{"empty explanation", "Наступила ночь и город затих\t1\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "examples.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.line+"\n"), 0o644))

			_, err := Parse(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFileFallsBackToDefault(t *testing.T) {
	bank := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, Default().Count(), bank.Count())
}
