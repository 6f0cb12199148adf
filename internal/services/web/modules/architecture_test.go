package modules

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nlwcopa/bolao/internal/services/web/routepath"
)

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			if strings.Contains(path, "/internal/services/web/modules/") {
				t.Fatalf("file %s imports sibling module path %q", file, path)
			}
		}
	}
}

func TestRoutePrefixesRemainUniqueConstants(t *testing.T) {
	t.Parallel()

	prefixes := []string{
		routepath.Root,
		routepath.Pools,
		routepath.Health,
		routepath.StaticPrefix,
	}
	seen := map[string]struct{}{}
	for _, prefix := range prefixes {
		if _, ok := seen[prefix]; ok {
			t.Fatalf("duplicate route prefix constant %q", prefix)
		}
		seen[prefix] = struct{}{}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	areas := []string{"landing", "assets"}
	requiredFiles := []string{"module.go", "routes.go", "routes_test.go"}
	for _, area := range areas {
		for _, file := range requiredFiles {
			path := filepath.Join(area, file)
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("module %q missing required file %q: %v", area, file, err)
			}
		}
	}
}
