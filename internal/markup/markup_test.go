// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render("# Saker falcons\n\nThe **saker** is *fast*.")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Saker falcons")
	assert.Contains(t, html, "<strong>saker</strong>")
	assert.Contains(t, html, "<em>fast</em>")
}

func TestRender_StripsScripts(t *testing.T) {
	out, err := Render("hello <script>alert(1)</script> <a href=\"javascript:alert(1)\">x</a>")
	require.NoError(t, err)

	html := string(out)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "javascript:")
}

func TestRender_Table(t *testing.T) {
	out, err := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "<table>"))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "bold", Plain("<b>bold</b>"))
}
