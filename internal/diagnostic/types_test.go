package diagnostic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKeepsEmissionOrder(t *testing.T) {
	var l Log

	l.Info(CodeInstallments, "found %d columns", 2)
	l.Warn(CodeUnmappedField, "no column for %q", "Email")
	l.Info(CodeDuplicateRemoved, "removed duplicates")
	l.Info(CodeDuplicateRemoved, "removed duplicates")

	require.Equal(t, 4, l.Len())
	assert.Equal(t, []string{
		"found 2 columns",
		`Warning: no column for "Email"`,
		"removed duplicates",
		"removed duplicates",
	}, l.Strings())
}

func TestLogPartitions(t *testing.T) {
	var l Log

	l.Warn(CodeFallbackID, "first")
	l.Info(CodeMapping, "second")
	l.Warn(CodeUnmappedField, "third")

	assert.Len(t, l.Infos(), 1)
	assert.Len(t, l.Warnings(), 2)
	assert.True(t, l.HasWarnings())
	assert.Equal(t, "third", l.Warnings()[1].Message)

	// the legacy string convention agrees with the explicit severity
	for _, n := range l.All() {
		assert.Equal(t, n.Severity == SeverityWarning, strings.Contains(n.String(), "Warning:"))
	}
}

func TestLogMessageWithArgs(t *testing.T) {
	var l Log

	l.Info(CodeMapping, "plain message")
	l.Info(CodeMapping, "mapped %s to %s", "Email", "E-mail")

	assert.Equal(t, "plain message", l.All()[0].Message)
	assert.Equal(t, "mapped Email to E-mail", l.All()[1].Message)
}

func TestLogByCode(t *testing.T) {
	var l Log

	l.Info(CodeMapping, "a")
	l.Warn(CodeUnmappedField, "b")
	l.Info(CodeMapping, "c")

	got := l.ByCode(CodeMapping)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[1].Message)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestAllReturnsCopy(t *testing.T) {
	var l Log

	l.Info(CodeMapping, "a")
	all := l.All()
	all[0].Message = "changed"

	assert.Equal(t, "a", l.All()[0].Message)
}
