package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintVersion(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "github.com/abhisek/moneypath", Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	var buf bytes.Buffer
	printVersion(&buf, "", info)
	out := buf.String()
	assert.Contains(t, out, "moneypath v0.4.0\n")
	assert.Contains(t, out, "github.com/abhisek/moneypath")
	assert.Contains(t, out, "go1.25.1")
	assert.Contains(t, out, "abc123 (modified)")

	buf.Reset()
	printVersion(&buf, "v1.0.0", info)
	assert.Contains(t, buf.String(), "moneypath v1.0.0\n")
}

func TestPrintVersionWithoutBuildInfo(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf, "", nil)
	assert.Equal(t, "moneypath (devel)\n", buf.String())
}
