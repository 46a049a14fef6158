// Package initfile verifies that every Go package in the tree declares a
// package doc comment. It backs the initfiles step of the check battery.
package initfile

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsgolang "github.com/smacker/go-tree-sitter/golang"
)

// Violation is one package directory with no package doc comment.
type Violation struct {
	Dir     string
	Package string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: package %s has no package doc comment", v.Dir, v.Package)
}

// CheckTree walks every package under root and reports the ones where no
// file carries a doc comment on its package clause.
func CheckTree(root string) ([]Violation, error) {
	type pkgState struct {
		name       string
		documented bool
	}
	packages := make(map[string]*pkgState)

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if skipDir(entry.Name(), path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name, documented, err := packageClause(source, path)
		if err != nil {
			return err
		}

		dir := filepath.Dir(path)
		state, ok := packages[dir]
		if !ok {
			state = &pkgState{name: name}
			packages[dir] = state
		}
		state.documented = state.documented || documented
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	var violations []Violation
	for dir, state := range packages {
		if !state.documented {
			violations = append(violations, Violation{Dir: dir, Package: state.name})
		}
	}
	sort.Slice(violations, func(i, j int) bool { return violations[i].Dir < violations[j].Dir })
	return violations, nil
}

// packageClause returns the package name and whether a comment sits directly
// above the package keyword.
func packageClause(source []byte, path string) (string, bool, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsgolang.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	var prev *sitter.Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() != "package_clause" {
			prev = node
			continue
		}

		name := ""
		for j := 0; j < int(node.NamedChildCount()); j++ {
			if child := node.NamedChild(j); child.Type() == "package_identifier" {
				name = child.Content(source)
			}
		}
		documented := prev != nil && prev.Type() == "comment" &&
			prev.EndPoint().Row+1 == node.StartPoint().Row
		return name, documented, nil
	}
	return "", false, fmt.Errorf("no package clause in %s", path)
}

func skipDir(name string, nested bool) bool {
	if !nested {
		return false
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "testdata" || name == "vendor"
}
