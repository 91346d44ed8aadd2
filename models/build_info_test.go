package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer

	NewBuildInfo("v1.2.0", "", "abc123").Print(&buf)

	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123\n", buf.String())
}
