package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, config{Package: "pack", Max: 3}))

	file, err := parser.ParseFile(token.NewFileSet(), "tuple_gen.go", buf.Bytes(), 0)
	require.NoError(t, err)
	assert.Equal(t, "pack", file.Name.Name)

	var types, funcs []string
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				if spec, ok := spec.(*ast.TypeSpec); ok {
					types = append(types, spec.Name.Name)
				}
			}
		case *ast.FuncDecl:
			if decl.Recv == nil {
				funcs = append(funcs, decl.Name.Name)
			}
		}
	}

	assert.Equal(t, []string{"Tuple1", "Tuple1Codec", "Tuple2", "Tuple2Codec", "Tuple3", "Tuple3Codec"}, types)
	assert.Equal(t, []string{"NewTuple1", "Tuple1Of", "NewTuple2", "Tuple2Of", "NewTuple3", "Tuple3Of"}, funcs)
}

func TestGenerateFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, config{Package: "pack", Max: 2}))
	src := buf.String()

	assert.Contains(t, src, "// Code generated by packgen. DO NOT EDIT.")
	assert.Contains(t, src, "return c.c1.Size() + c.c2.Size()")
	assert.Contains(t, src, "return Tuple2[T1, T2]{V1: v1, V2: v2}")

	first := bytes.Index(buf.Bytes(), []byte(`if t.V1, err = c.c1.Unpack(r, order); err != nil`))
	second := bytes.Index(buf.Bytes(), []byte(`if t.V2, err = c.c2.Unpack(r, order); err != nil`))
	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
}

func TestGenerateInvalidArity(t *testing.T) {
	var buf bytes.Buffer
	err := generate(&buf, config{Package: "pack", Max: 0})
	assert.ErrorContains(t, err, "max arity")
	assert.Zero(t, buf.Len())
}

func TestSeq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, seq(3))
	assert.Equal(t, "T1, T2 any", params(2))
	assert.Equal(t, "T1", args(1))
}
