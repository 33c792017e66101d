package scopehandler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/langc/scopehandler"
)

func TestZeroStackHasNoActiveHandlers(t *testing.T) {
	var s scopehandler.Stack
	assert.False(t, s.Active("break"))
}

func TestPushActivatesHandler(t *testing.T) {
	var s scopehandler.Stack
	s.Push("break")
	assert.True(t, s.Active("break"))
	assert.False(t, s.Active("continue"))
}

func TestPopDeactivatesHandler(t *testing.T) {
	var s scopehandler.Stack
	s.Push("break")
	s.Pop("break")
	assert.False(t, s.Active("break"))
}

func TestNestedPushRequiresMatchingPops(t *testing.T) {
	// A `for` loop nested in a `switch` both install "break": the inner
	// loop's Pop must not deactivate the outer switch's handler.
	var s scopehandler.Stack
	s.Push("break")
	s.Push("break")
	s.Pop("break")
	assert.True(t, s.Active("break"))
	s.Pop("break")
	assert.False(t, s.Active("break"))
}

func TestPopOnInactiveHandlerIsNoOp(t *testing.T) {
	var s scopehandler.Stack
	assert.NotPanics(t, func() { s.Pop("continue") })
	assert.False(t, s.Active("continue"))
}

func TestIndependentHandlerNames(t *testing.T) {
	var s scopehandler.Stack
	s.Push("break")
	assert.True(t, s.Active("break"))
	assert.False(t, s.Active("continue"))
}
