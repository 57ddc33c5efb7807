package keywords

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-onboarder/internal/schema"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
parent:
  Email: [mail, email address]
  Parent ID: guardian id
student:
  Name: pupil
`

	set, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", set.Version)

	// declared order is preserved
	assert.Equal(t, []string{"Email", "Parent ID"}, set.Parent.Fields())
	assert.Equal(t, []string{"mail", "email address"}, set.Parent.Synonyms("Email"))
	assert.Equal(t, []string{"guardian id"}, set.Parent.Synonyms("Parent ID"))
	assert.Equal(t, schema.EntityParent, set.Parent.Entity)

	assert.Equal(t, []string{"Name"}, set.Student.Fields())
	assert.Equal(t, schema.EntityStudent, set.Student.Entity)

	// missing section falls back to defaults
	assert.Equal(t, Default().Payment, set.Payment)
}

func TestParseDefaultsVersion(t *testing.T) {
	set, err := Parse([]byte("parent:\n  Email: email\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", set.Version)
}

func TestParseEmptySectionDisablesMatching(t *testing.T) {
	set, err := Parse([]byte("payment: {}\n"))
	require.NoError(t, err)
	assert.Empty(t, set.Payment.Entries)
	assert.Equal(t, schema.EntityPayment, set.Payment.Entity)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "parent: [unclosed"},
		{"section is a list", "parent:\n  - Email\n"},
		{"synonyms is a mapping", "parent:\n  Email: {a: b}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("student:\n  Nickname: [nick]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDictionary))

	var ce *ContractError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, schema.EntityStudent, ce.Entity)
	assert.Equal(t, "Nickname", ce.Field)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	set, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), set)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parent:\n  Phone: [cell]\n"), 0o644))

	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cell"}, set.Parent.Synonyms("Phone"))

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
