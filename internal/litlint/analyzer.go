// Package litlint provides a union arms linter for litcodec projects.
package litlint

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer is the litcodec arms struct linter. It checks structs whose
// name ends in "Arms", the convention for union.OneOf arm sets.
var Analyzer = &analysis.Analyzer{
	Name: "litlint",
	Doc:  "checks union arms structs for pointer arms and unreachable duplicate arm types",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		inspectArmsStructs(file, pass)
	}
	return nil, nil
}

func inspectArmsStructs(file *ast.File, pass *analysis.Pass) {
	ast.Inspect(file, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		if !strings.HasSuffix(ts.Name.Name, "Arms") {
			return true
		}
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return true
		}
		validateArmFields(st, pass)
		checkDuplicateArmTypes(st, pass)
		return false
	})
}

// validateArmFields reports exported arms that are not pointers. The
// union decoder skips unexported fields, so those stay unflagged.
func validateArmFields(st *ast.StructType, pass *analysis.Pass) {
	for _, fld := range st.Fields.List {
		if _, ok := armKey(fld.Type); ok {
			continue
		}
		for _, name := range fld.Names {
			if !name.IsExported() {
				continue
			}
			pass.Reportf(fld.Type.Pos(), "union arm %s must be a pointer type, got %s", name.Name, types.ExprString(fld.Type))
		}
	}
}

// checkDuplicateArmTypes reports arms repeating an earlier arm's type.
// Decode tries arms in field order, so the second occurrence can never
// match.
func checkDuplicateArmTypes(st *ast.StructType, pass *analysis.Pass) {
	seen := map[string]ast.Node{}
	for _, fld := range st.Fields.List {
		key, ok := armKey(fld.Type)
		if !ok {
			continue
		}
		for _, name := range fld.Names {
			if !name.IsExported() {
				continue
			}
			if prev, dup := seen[key]; dup {
				pass.Reportf(name.Pos(), "duplicate arm type %s can never match, first tried at %s", key, pass.Fset.Position(prev.Pos()))
			} else {
				seen[key] = name
			}
		}
	}
}

// armKey returns the pointed-to type rendered as a dedup key, or false
// when the field is not a pointer.
func armKey(expr ast.Expr) (string, bool) {
	star, ok := expr.(*ast.StarExpr)
	if !ok {
		return "", false
	}
	return types.ExprString(star.X), true
}
