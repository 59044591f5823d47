package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chiTransport "github.com/kailas-cloud/docsearch/internal/transport/chi"
)

// writeTestConfig writes test.yaml pointing the embedded driver at a temp file.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	yaml := "database:\n" +
		"  driver: embedded\n" +
		"  embedded:\n" +
		"    path: " + filepath.Join(dir, "docsearch.db") + "\n" +
		"collection:\n" +
		"  name: cli_test_index\n" +
		"logging:\n" +
		"  level: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	searchQuery, searchContentType = "", ""
	searchCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(append([]string{"--env", "test", "--config-dir", dir}, args...))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "docsearch", rootCmd.Use)
	for _, name := range []string{"serve", "init", "seed", "search", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestSearchCmd_Flags(t *testing.T) {
	q := searchCmd.Flags().Lookup("query")
	require.NotNil(t, q)
	assert.Equal(t, "q", q.Shorthand)
	require.NotNil(t, searchCmd.Flags().Lookup("content-type"))
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	_, err := run(t, writeTestConfig(t), "search")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}

func TestInitCmd(t *testing.T) {
	out, err := run(t, writeTestConfig(t), "init")
	require.NoError(t, err)

	var res map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "ok", res["status"])
	assert.Equal(t, "cli_test_index", res["collection"])
	assert.Equal(t, "cli_test_index", res["index"])
}

func TestSeedThenSearch(t *testing.T) {
	dir := writeTestConfig(t)

	out, err := run(t, dir, "seed")
	require.NoError(t, err)
	var seed chiTransport.SeedResponse
	require.NoError(t, json.Unmarshal([]byte(out), &seed))
	assert.Equal(t, 5, seed.Admitted)
	assert.Equal(t, 5, seed.Indexed)

	out, err = run(t, dir, "search", "-q", "пароль", "--content-type", "faq")
	require.NoError(t, err)
	var hits []chiTransport.SearchHit
	require.NoError(t, json.Unmarshal([]byte(out), &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, "FAQ: учетная запись", hits[0].Title)
}

func TestSearchCmd_InvalidContentType(t *testing.T) {
	_, err := run(t, writeTestConfig(t), "search", "-q", "поиск", "--content-type", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "article, blog, news, faq")
}

func TestRootCmd_MissingConfig(t *testing.T) {
	_, err := run(t, t.TempDir(), "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docsearch dev")
}
