//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths inside an isolated blog checkout.
type testEnv struct {
	RootDir      string // working directory of the run
	PostsDir     string // docs/_posts
	TemplatePath string // docs/_posts/template.md
}

// setupTestEnv creates a blog checkout in a temp directory, makes it the
// working directory, and clears any NEWPOST_* overrides and Viper state.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	env := &testEnv{
		RootDir:      root,
		PostsDir:     filepath.Join(root, "docs", "_posts"),
		TemplatePath: filepath.Join(root, "docs", "_posts", "template.md"),
	}

	if err := os.MkdirAll(env.PostsDir, 0755); err != nil {
		t.Fatalf("creating posts dir: %v", err)
	}
	for _, key := range []string{"POSTS_DIR", "TEMPLATE", "IMAGES_DIR", "TAGS", "CATEGORIES"} {
		t.Setenv("NEWPOST_"+key, "")
		os.Unsetenv("NEWPOST_" + key)
	}

	t.Chdir(root)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
