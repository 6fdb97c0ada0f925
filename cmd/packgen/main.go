// Command packgen generates the fixed-arity tuple types and codecs of
// package pack.
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"
	"text/template"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

//go:embed tuple.go.tmpl
var tupleTemplate string

var tmpl = template.Must(template.New("tuple").Funcs(template.FuncMap{
	"seq":    seq,
	"params": params,
	"args":   args,
}).Parse(tupleTemplate))

// seq returns 1..n.
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// params formats n type parameters, e.g. "T1, T2 any".
func params(n int) string {
	return args(n) + " any"
}

// args formats n type arguments, e.g. "T1, T2".
func args(n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("T%v", i+1)
	}
	return strings.Join(names, ", ")
}

type config struct {
	Package string
	Max     int
}

func generate(w io.Writer, cfg config) error {
	if cfg.Max < 1 {
		return fmt.Errorf("max arity must be at least 1, got %v", cfg.Max)
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package string
		Arities []int
	}{
		Package: cfg.Package,
		Arities: seq(cfg.Max),
	})
	if err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}

	_, err = w.Write(src)
	return err
}

func main() {
	out := flag.String("out", "tuple_gen.go", "output file")
	pkg := flag.String("package", "pack", "output package name")
	arity := flag.Int("max", 12, "highest tuple arity to generate")
	flag.Parse()

	var buf bytes.Buffer
	err := generate(&buf, config{Package: *pkg, Max: *arity})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	err = os.WriteFile(*out, buf.Bytes(), 0644)
	if err != nil {
		log.Fatalf("write %v: %v", *out, err)
	}
	log.Infof("wrote tuples of arity 1-%v to %v", *arity, *out)
}
