package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNestingStackBasic(t *testing.T) {
	var s nestingStack
	assert.True(t, s.empty())
	assert.Equal(t, containerEmpty, s.top())

	s.pushObject()
	assert.Equal(t, containerObject, s.top())

	s.pushArray()
	assert.Equal(t, containerArray, s.top())

	s.pop()
	assert.Equal(t, containerObject, s.top())

	s.pop()
	assert.True(t, s.empty())
}

func TestNestingStackDeep(t *testing.T) {
	var s nestingStack
	const depth = 100
	for i := 0; i < depth; i++ {
		if i%3 == 0 {
			s.pushObject()
		} else {
			s.pushArray()
		}
	}
	for i := depth - 1; i >= 0; i-- {
		want := containerArray
		if i%3 == 0 {
			want = containerObject
		}
		assert.Equal(t, want, s.top(), "depth %d", i)
		s.pop()
	}
	assert.True(t, s.empty())
}
