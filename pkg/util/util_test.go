package util_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agubarev/easypass/pkg/util"
	"github.com/r3labs/diff"
	"github.com/stretchr/testify/assert"
)

func TestWriteFileAtomic(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "data.ini")

	a.NoError(util.WriteFileAtomic(path, []byte("first"), 0600))
	a.NoError(util.WriteFileAtomic(path, []byte("second"), 0600))

	payload, err := os.ReadFile(path)
	a.NoError(err)
	a.Equal("second", string(payload))

	info, err := os.Stat(path)
	a.NoError(err)
	a.Equal(os.FileMode(0600), info.Mode().Perm())

	// no temporary leftovers
	entries, err := os.ReadDir(dir)
	a.NoError(err)
	a.Len(entries, 1)

	// missing parent directory
	err = util.WriteFileAtomic(filepath.Join(dir, "missing", "data.ini"), []byte("x"), 0600)
	a.Error(err)
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	a := assert.New(t)

	dir := filepath.Join(t.TempDir(), "a", "b")
	a.False(util.Exists(dir))
	a.NoError(util.CreateDirectoryIfNotExists(dir, 0700))
	a.True(util.Exists(dir))

	// repeated call is a no-op
	a.NoError(util.CreateDirectoryIfNotExists(dir, 0700))
}

func TestFileChecksum(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "data")

	sum, exists, err := util.FileChecksum(path)
	a.NoError(err)
	a.False(exists)
	a.Zero(sum)

	a.NoError(os.WriteFile(path, []byte("payload"), 0600))

	sum, exists, err = util.FileChecksum(path)
	a.NoError(err)
	a.True(exists)
	a.Equal(util.Checksum([]byte("payload")), sum)
	a.NotEqual(util.Checksum([]byte("payload2")), sum)
}

func TestSortedStringKeys(t *testing.T) {
	a := assert.New(t)

	a.Equal([]string{"a", "b", "c"}, util.SortedStringKeys(map[string]string{"c": "", "a": "", "b": ""}))
	a.Empty(util.SortedStringKeys(nil))

	src := map[string]string{"k": "v"}
	cp := util.CopyStringMap(src)
	cp["k"] = "changed"
	a.Equal("v", src["k"])
	a.NotNil(util.CopyStringMap(nil))
}

func TestChangelog(t *testing.T) {
	a := assert.New(t)

	before := map[string]string{"github": "a", "email": "b"}
	after := map[string]string{"github": "c", "bank": "d"}

	changelog, err := util.Changelog(before, after)
	a.NoError(err)
	a.Len(changelog, 3)

	kinds := make(map[string]string)
	for _, c := range changelog {
		kinds[util.ChangedKey(c)] = c.Type
	}

	a.Equal(diff.UPDATE, kinds["github"])
	a.Equal(diff.DELETE, kinds["email"])
	a.Equal(diff.CREATE, kinds["bank"])

	changelog, err = util.Changelog(after, after)
	a.NoError(err)
	a.Empty(changelog)
}

func TestPrettyJSON(t *testing.T) {
	a := assert.New(t)

	buf, err := util.PrettyJSON(map[string]interface{}{"count": 1})
	a.NoError(err)
	a.True(strings.Contains(string(buf), "\n"))
	a.True(strings.Contains(string(buf), `"count": 1`))
}

func TestRandomIndex(t *testing.T) {
	a := assert.New(t)

	for i := 0; i < 100; i++ {
		n, err := util.RandomIndex(10)
		a.NoError(err)
		a.True(n >= 0 && n < 10)
	}

	_, err := util.RandomIndex(0)
	a.Error(err)

	buf, err := util.NewCSPRNGHex(8)
	a.NoError(err)
	a.Len(buf, 16)
}

func TestDefaultLogger(t *testing.T) {
	a := assert.New(t)

	logger, err := util.DefaultLogger(false, "")
	a.NoError(err)
	a.NotNil(logger)

	dir := filepath.Join(t.TempDir(), "logs")
	logger, err = util.DefaultLogger(false, dir)
	a.NoError(err)
	a.NotNil(logger)

	logger.Info("hello")
	logger.Error("boom")
	_ = logger.Sync()

	a.True(util.Exists(filepath.Join(dir, util.StandardLogFilename)))
	a.True(util.Exists(filepath.Join(dir, util.ErrorLogFilename)))
}
