package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	t.Setenv("METHODHANDLES_OTLP_ENDPOINT", "")
	t.Setenv("METHODHANDLES_LOGGING_FORMAT", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "Country Object Created - Country [name=India, population=1352600000]", lines[0])
}

func TestRootCmdInvalidConfig(t *testing.T) {
	t.Setenv("METHODHANDLES_LOGGING_FORMAT", "xml")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
	require.Empty(t, out.String())
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	require.NotEmpty(t, strings.TrimSpace(out.String()))
}

func TestRootCmdRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	require.Error(t, cmd.Execute())
}
