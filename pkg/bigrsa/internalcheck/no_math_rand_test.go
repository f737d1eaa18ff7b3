package internalcheck

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

var forbiddenImports = map[string]string{
	"math/rand":    "use an injected io.Reader or crypto/rand",
	"math/rand/v2": "use an injected io.Reader or crypto/rand",
}

func TestNoMathRand(t *testing.T) {
	pkgs := loadBigrsa(t, packages.NeedSyntax|packages.NeedFiles|packages.NeedName)

	var findings []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if why, bad := forbiddenImports[path]; bad {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: imports %s; %s", pos, path, why))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("randomness policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
