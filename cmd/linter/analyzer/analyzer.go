// Package analyzer reports calls that terminate the process or write straight
// to stdout from library code. The interactive view owns both.
package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "forbiddencalls"
	analyzerDoc  = "reports panic anywhere, and process exits or stdout prints outside the main function"
)

// Analyzer checks for forbidden function calls.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// mainOnly maps package path to the functions allowed only inside main.
var mainOnly = map[string]map[string]string{
	"log": {
		"Fatal":   "log.Fatal",
		"Fatalf":  "log.Fatal",
		"Fatalln": "log.Fatal",
	},
	"os": {
		"Exit": "os.Exit",
	},
	"github.com/rs/zerolog/log": {
		"Fatal": "log.Fatal",
		"Panic": "log.Panic",
	},
	"fmt": {
		"Print":   "fmt.Print",
		"Printf":  "fmt.Print",
		"Println": "fmt.Print",
	},
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.CallExpr)(nil),
	}

	var inMain *ast.FuncDecl
	insp.Nodes(nodeFilter, func(node ast.Node, push bool) bool {
		switch n := node.(type) {
		case *ast.FuncDecl:
			if push {
				if isMainFunc(pass, n) {
					inMain = n
				}
			} else if inMain == n {
				inMain = nil
			}
		case *ast.CallExpr:
			if push {
				checkCall(pass, n, inMain != nil)
			}
		}
		return true
	})

	return nil, nil
}

func isMainFunc(pass *analysis.Pass, decl *ast.FuncDecl) bool {
	return decl.Recv == nil && decl.Name.Name == "main" && pass.Pkg.Name() == "main"
}

func checkCall(pass *analysis.Pass, call *ast.CallExpr, inMain bool) {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		if fn.Name == "panic" && isBuiltin(pass, fn) {
			pass.Reportf(call.Pos(), "panic is forbidden")
		}
	case *ast.SelectorExpr:
		if inMain {
			return
		}
		if name, ok := restrictedName(pass, fn); ok {
			pass.Reportf(call.Pos(), "%s is forbidden outside main function", name)
		}
	}
}

func isBuiltin(pass *analysis.Pass, ident *ast.Ident) bool {
	if pass.TypesInfo == nil {
		return true
	}
	_, ok := pass.TypesInfo.Uses[ident].(*types.Builtin)
	return ok
}

func restrictedName(pass *analysis.Pass, sel *ast.SelectorExpr) (string, bool) {
	ident, ok := sel.X.(*ast.Ident)
	if !ok || pass.TypesInfo == nil {
		return "", false
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return "", false
	}

	funcs, ok := mainOnly[pkgName.Imported().Path()]
	if !ok {
		return "", false
	}

	name, ok := funcs[sel.Sel.Name]
	return name, ok
}
