package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPrintsToStdout(t *testing.T) {
	r := NewRunner()
	var out bytes.Buffer
	r.SetOutput(&out, &bytes.Buffer{})

	_, err := r.Run(`print 1 + 2;`)
	assert.NoError(t, err)
	assert.Equal(t, "3\n", out.String())
}

func TestRunPersistsGlobalStateAcrossCalls(t *testing.T) {
	r := NewRunner()
	var out bytes.Buffer
	r.SetOutput(&out, &bytes.Buffer{})

	_, err := r.Run(`var x = 1;`)
	assert.NoError(t, err)

	_, err = r.Run(`x = x + 1; print x;`)
	assert.NoError(t, err)
	assert.Equal(t, "2\n", out.String())
}

func TestRunReportsLexErrorAndStops(t *testing.T) {
	r := NewRunner()
	var stderr bytes.Buffer
	r.SetOutput(&bytes.Buffer{}, &stderr)

	_, err := r.Run("var x = @;")
	assert.Error(t, err)
	assert.NotEmpty(t, stderr.String())
}

func TestRunReportsRuntimeErrorButReturnsParsedStatements(t *testing.T) {
	r := NewRunner()
	var stderr bytes.Buffer
	r.SetOutput(&bytes.Buffer{}, &stderr)

	stmts, err := r.Run(`print 1 + "x";`)
	assert.Error(t, err)
	assert.Len(t, stmts, 1)
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 1]\n", stderr.String())
}

func TestPrintAST(t *testing.T) {
	r := NewRunner()
	r.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})

	stmts, err := r.Run(`print 1;`)
	assert.NoError(t, err)

	var buf bytes.Buffer
	r.PrintAST(&buf, stmts)
	assert.Contains(t, buf.String(), "(print)")
}
