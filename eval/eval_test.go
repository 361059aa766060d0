package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cxljs/lox/lexer"
	"github.com/cxljs/lox/parser"
	"github.com/cxljs/lox/resolver"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, err := lexer.New(src).ScanTokens()
	assert.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	assert.NoError(t, err)
	depths, err := resolver.Resolve(stmts)
	assert.NoError(t, err)

	var stdout bytes.Buffer
	interp := New(depths)
	interp.Stdout = &stdout
	var stderr bytes.Buffer
	interp.Stderr = &stderr

	runErr := interp.Interpret(stmts)
	if runErr != nil {
		return stdout.String(), runErr
	}
	return stdout.String(), nil
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	assert.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	assert.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestMismatchedPlusOperandsIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 + "a";`)
	assert.Error(t, err)
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 1]", err.Error())
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	assert.Error(t, err)
	assert.Equal(t, "divide by zero\n[line 1]", err.Error())
}

func TestLogicalShortCircuit(t *testing.T) {
	out, err := run(t, `
		fun loud() { print "called"; return true; }
		if (true or loud()) { print "short-circuited"; }
		if (false and loud()) { print "unreachable"; }
	`)
	assert.NoError(t, err)
	assert.Equal(t, "short-circuited\n", out)
}

func TestForLoopDesugarsAndCounts(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, err := run(t, `
		fun add(a, b) { return a + b; }
		print add(2, 3);
	`)
	assert.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestClosureCapturesDeclarationTimeBinding(t *testing.T) {
	// Regression: show() always prints the `a` visible when it was declared,
	// never a same-named `a` declared later in the enclosing block.
	out, err := run(t, `
		var a = "global";
		{
			fun show() { print a; }
			show();
			var a = "block";
			show();
		}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestRecursiveFunctionsCanSeeThemselves(t *testing.T) {
	out, err := run(t, `
		fun fact(n) {
			if (n <= 1) return 1;
			return n * fact(n - 1);
		}
		print fact(5);
	`)
	assert.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestUndefinedVariableSuggestsNearbyName(t *testing.T) {
	// "coun" is a subsequence of "count", which is what the fuzzy matcher
	// looks for; an out-of-order typo like a transposition would not match.
	_, err := run(t, `
		var count = 1;
		print coun;
	`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Did you mean 'count'?")
}

func TestClassInstanceFieldsAndMethods(t *testing.T) {
	out, err := run(t, `
		class Counter {
			init(start) { this.count = start; }
			increment() { this.count = this.count + 1; return this.count; }
		}
		var c = Counter(10);
		print c.increment();
		print c.increment();
	`)
	assert.NoError(t, err)
	assert.Equal(t, "11\n12\n", out)
}

func TestSuperDispatchesToParentMethod(t *testing.T) {
	out, err := run(t, `
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "Woof";
			}
		}
		Dog().speak();
	`)
	assert.NoError(t, err)
	assert.Equal(t, "...\nWoof\n", out)
}

func TestClockIsRegisteredAndCallable(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	assert.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
