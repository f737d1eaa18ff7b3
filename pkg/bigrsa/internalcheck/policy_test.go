package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

const bigrsaPattern = "github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/..."

func loadBigrsa(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{Mode: mode}
	pkgs, err := packages.Load(cfg, bigrsaPattern)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if len(pkgs) == 0 {
		t.Fatalf("pattern %s matched no packages", bigrsaPattern)
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			t.Errorf("%s: %v", pkg.PkgPath, e)
		}
	}
	return pkgs
}
