package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cxljs/lox/value"
)

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("a", value.Number(1))
	v, err := env.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGetUndefinedErrors(t *testing.T) {
	env := New()
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestChildSeesParentBindings(t *testing.T) {
	parent := New()
	parent.Define("a", value.Number(1))
	child := NewChild(parent)
	v, err := child.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestAssignWritesThroughToDefiningFrame(t *testing.T) {
	parent := New()
	parent.Define("a", value.Number(1))
	child := NewChild(parent)

	assert.NoError(t, child.Assign("a", value.Number(2)))

	v, err := parent.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
}

func TestAssignUndefinedErrors(t *testing.T) {
	env := New()
	assert.Error(t, env.Assign("missing", value.Number(1)))
}

func TestGetAtAndAssignAtUseExactDistance(t *testing.T) {
	global := New()
	global.Define("a", value.String("global"))
	block := NewChild(global)
	block.Define("a", value.String("block"))
	inner := NewChild(block)

	assert.Equal(t, value.String("block"), inner.GetAt(1, "a"))
	assert.Equal(t, value.String("global"), inner.GetAt(2, "a"))

	inner.AssignAt(1, "a", value.String("changed"))
	v, _ := block.Get("a")
	assert.Equal(t, value.String("changed"), v)
}

func TestSharedByReferenceAcrossCapture(t *testing.T) {
	// A captured pointer to a frame must observe later mutations made
	// through any other pointer to the same frame (no copy-on-capture).
	outer := New()
	outer.Define("a", value.Number(1))
	captured := outer

	outer.Define("a", value.Number(2))

	v, err := captured.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
}
