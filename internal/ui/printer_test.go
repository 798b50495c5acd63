package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/enumfiles/internal/config"
	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

var samplePaths = []string{
	"test/testFolder/test1",
	"test/testFolder/test1/test1_1",
	"test/testFolder/with space",
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.FormatPlain, false)

	require.NoError(t, p.Print(samplePaths, enumfiles.KindDirectory))
	assert.Equal(t, strings.Join(samplePaths, "\n")+"\n", buf.String())
}

func TestPrinter_PlainEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, config.FormatPlain, false).Print([]string{}, enumfiles.KindFile))
	assert.Empty(t, buf.String())
}

func TestPrinter_PlainColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.FormatPlain, true)

	require.NoError(t, p.Print([]string{"a/dir"}, enumfiles.KindDirectory))
	out := buf.String()
	assert.Contains(t, out, "\x1b[", "directories should be styled")
	assert.Contains(t, out, "a/dir")

	buf.Reset()
	require.NoError(t, p.Print([]string{"a/file.txt"}, enumfiles.KindFile))
	assert.Equal(t, "a/file.txt\n", buf.String(), "files are not styled")
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, config.FormatJSON, true).Print(samplePaths, enumfiles.KindDirectory))

	assert.NotContains(t, buf.String(), "\x1b[", "structured output is never colored")

	var got []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, samplePaths, got)
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, config.FormatYAML, false).Print(samplePaths, enumfiles.KindFile))

	var got []string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, samplePaths, got)
}

func TestPrinter_EmptyStructured(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{config.FormatJSON, "[]\n"},
		{config.FormatYAML, "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			for _, paths := range [][]string{nil, {}} {
				var buf bytes.Buffer
				require.NoError(t, NewPrinter(&buf, tt.format, false).Print(paths, enumfiles.KindFile))
				assert.Equal(t, tt.want, buf.String())
			}
		})
	}
}

func TestPrinter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewPrinter(&buf, "xml", false).Print(samplePaths, enumfiles.KindFile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enumfiles.ErrInvalidFormat))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPrinter_WriteError(t *testing.T) {
	for _, format := range config.Formats {
		t.Run(format, func(t *testing.T) {
			err := NewPrinter(failingWriter{}, format, false).Print(samplePaths, enumfiles.KindFile)
			assert.EqualError(t, err, "broken pipe")
		})
	}
}
