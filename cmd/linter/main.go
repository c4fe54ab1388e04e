package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/MikhailRaia/shortener-client/cmd/linter/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
