package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrantGate(t *testing.T) {
	gate := NewGrantGate()
	alice := Identity{ID: 1, Name: "alice"}
	bob := Identity{ID: 2, Name: "bob"}

	gate.Allow(alice, ActionEdit, Category(7))
	gate.Allow(bob, ActionDelete, Component())

	// category grant applies only to that category
	assert.True(t, gate.Authorise(alice, ActionEdit, Category(7)))
	assert.False(t, gate.Authorise(alice, ActionEdit, Category(8)))
	assert.False(t, gate.Authorise(alice, ActionDelete, Category(7)))
	assert.False(t, gate.Authorise(alice, ActionEdit, Component()))

	// component grant covers every category
	assert.True(t, gate.Authorise(bob, ActionDelete, Component()))
	assert.True(t, gate.Authorise(bob, ActionDelete, Category(7)))
	assert.False(t, gate.Authorise(bob, ActionEdit, Component()))
}

func TestAllowAll(t *testing.T) {
	gate := AllowAll{}

	assert.True(t, gate.Authorise(Identity{}, ActionDelete, Component()))
	assert.True(t, gate.Authorise(Identity{ID: 9}, ActionCreate, Category(3)))
}
