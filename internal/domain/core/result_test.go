package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	r := Ok(42)
	assert.True(t, r.IsOK())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Value())
	assert.Empty(t, r.Err())
}

func TestFail(t *testing.T) {
	r := Fail[int]("something is off")
	assert.True(t, r.IsFailure())
	assert.False(t, r.IsOK())
	assert.Equal(t, "something is off", r.Err())
}

func TestFailRequiresMessage(t *testing.T) {
	assert.Panics(t, func() {
		Fail[string]("")
	})
}

func TestValueOnFailurePanics(t *testing.T) {
	r := Fail[string]("nope")
	assert.Panics(t, func() {
		_ = r.Value()
	})
}

func TestOkUnit(t *testing.T) {
	r := OkUnit()
	assert.True(t, r.IsOK())
}
