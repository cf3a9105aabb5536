package template233

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TEMPLATE233_DIR", "")
	t.Setenv("TEMPLATE233_SCHEMA_DIR", "")

	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "data_gen", settings.DataDir)
	assert.Equal(t, []string{"en"}, settings.Languages)
	assert.Equal(t, 1, settings.DefaultCount)
	assert.True(t, settings.ColorEnabled())
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dataDir: out/data_gen
languages: [en, fr, de]
defaultCount: 10
defaultObjects: Account, Contact
schemaDir: schemas
color: false
`), 0o644))

	t.Setenv("TEMPLATE233_DIR", "")
	t.Setenv("TEMPLATE233_SCHEMA_DIR", "/env/schemas")

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "out/data_gen", settings.DataDir)
	assert.Equal(t, []string{"en", "fr", "de"}, settings.Languages)
	assert.Equal(t, 10, settings.DefaultCount)
	assert.Equal(t, "Account, Contact", settings.DefaultObjects)
	assert.Equal(t, "/env/schemas", settings.SchemaDir, "环境变量优先于设置文件")
	assert.False(t, settings.ColorEnabled())
}

func TestLoadSettings_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("TEMPLATE233_DIR", "/env/data_gen")
	t.Setenv("TEMPLATE233_SCHEMA_DIR", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultSettingsFile), []byte("dataDir: from_file\n"), 0o644))

	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "/env/data_gen", settings.DataDir)
}

func TestLoadSettings_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEMPLATE233_DIR", "")
	t.Setenv("TEMPLATE233_SCHEMA_DIR", "")

	_, err := LoadSettings(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "显式指定的文件必须存在")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("languages: [en, \"not a tag!\"]\n"), 0o644))
	_, err = LoadSettings(bad)
	assert.ErrorContains(t, err, "invalid language")

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("defaultCount: -1\n"), 0o644))
	_, err = LoadSettings(negative)
	assert.ErrorContains(t, err, "defaultCount")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("languages: [en\n"), 0o644))
	_, err = LoadSettings(broken)
	assert.Error(t, err)
}

// chdir 切换工作目录并在测试结束时恢复（等价于 Go 1.24 的 t.Chdir）
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
