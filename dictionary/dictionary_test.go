package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
synonyms:
  Admin:
    - administrator
    - sysadmin
corrections:
  - pattern: \bpirece\b
    replacement: Pierce
  - pattern: \bmailbix\b
    replacement: mailbox
`

func TestLoad(t *testing.T) {
	d, err := Load([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Contains(t, d.Synonyms, "Admin")
	assert.Contains(t, d.Synonyms["Admin"], "administrator")
	require.Len(t, d.Corrections, 2)
	assert.Equal(t, "Pierce", d.Corrections[0].Replacement)
}

func TestLoad_InvalidPattern(t *testing.T) {
	_, err := Load([]byte("corrections:\n  - pattern: '['\n    replacement: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile correction pattern")
}

func TestApply(t *testing.T) {
	d, err := Load([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Pierce county", d.Apply("pirece county"))
	assert.Equal(t, "Pierce county", d.Apply("PIRECE county"))
	assert.Equal(t, "shared mailbox", d.Apply("shared mailbix"))
	assert.Equal(t, "untouched", d.Apply("untouched"))
}

func TestApply_NilDictionary(t *testing.T) {
	var d *Dictionary
	assert.Equal(t, "as-is", d.Apply("as-is"))
}

func TestExpand(t *testing.T) {
	d, err := New(map[string][]string{"Admin": {"administrator"}}, nil)
	require.NoError(t, err)

	pool, canonical := d.Expand([]string{"Admin", "bob.smith"})
	assert.Equal(t, []string{"Admin", "administrator", "bob.smith"}, pool)
	assert.Equal(t, "Admin", canonical["administrator"])
	assert.Equal(t, "bob.smith", canonical["bob.smith"])
}

func TestExpand_NilDictionary(t *testing.T) {
	var d *Dictionary
	pool, canonical := d.Expand([]string{"a"})
	assert.Equal(t, []string{"a"}, pool)
	assert.Equal(t, "a", canonical["a"])
}
