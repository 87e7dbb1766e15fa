package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/lit-labs/litcodec/internal/litlint"
)

func main() {
	singlechecker.Main(litlint.Analyzer)
}
