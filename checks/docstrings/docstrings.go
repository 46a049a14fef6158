// Package docstrings verifies that exported Go declarations carry doc
// comments. It backs the docstrings step of the check battery.
package docstrings

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	tsgolang "github.com/smacker/go-tree-sitter/golang"
)

// Violation is one exported symbol missing its doc comment.
type Violation struct {
	File   string
	Line   int
	Symbol string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d: exported %s has no doc comment", v.File, v.Line, v.Symbol)
}

// CheckTree walks every non-test Go file under root and collects violations.
// Hidden directories, testdata and vendor trees are skipped.
func CheckTree(root string) ([]Violation, error) {
	var violations []Violation

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
		fileViolations, err := Check(source, path)
		if err != nil {
			return err
		}
		violations = append(violations, fileViolations...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return violations, nil
}

// Check parses one Go source file and reports undocumented exported
// declarations.
func Check(source []byte, path string) ([]Violation, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsgolang.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	var violations []Violation
	root := tree.RootNode()

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)

		var symbols []*sitter.Node
		switch node.Type() {
		case "function_declaration", "method_declaration":
			if name := node.ChildByFieldName("name"); name != nil {
				symbols = append(symbols, name)
			}
		case "type_declaration":
			for j := 0; j < int(node.NamedChildCount()); j++ {
				spec := node.NamedChild(j)
				if spec.Type() != "type_spec" && spec.Type() != "type_alias" {
					continue
				}
				if name := spec.ChildByFieldName("name"); name != nil {
					symbols = append(symbols, name)
				}
			}
		default:
			continue
		}

		if hasDocComment(root, i, node) {
			continue
		}
		for _, symbol := range symbols {
			name := symbol.Content(source)
			if !isExported(name) {
				continue
			}
			violations = append(violations, Violation{
				File:   path,
				Line:   int(node.StartPoint().Row) + 1,
				Symbol: name,
			})
		}
	}
	return violations, nil
}

// hasDocComment reports whether a comment ends on the line directly above
// the declaration.
func hasDocComment(root *sitter.Node, index int, decl *sitter.Node) bool {
	if index == 0 {
		return false
	}
	prev := root.NamedChild(index - 1)
	if prev.Type() != "comment" {
		return false
	}
	return prev.EndPoint().Row+1 == decl.StartPoint().Row
}

func isExported(name string) bool {
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(first)
}

func skipDir(name string, nested bool) bool {
	if !nested {
		return false
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "testdata" || name == "vendor"
}
