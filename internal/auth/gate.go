package auth

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Identity is the acting user. Operations take it explicitly, there is
// no ambient current-user state.
type Identity struct {
	ID   int64
	Name string
}

type Action string

const (
	ActionCreate    Action = "create"
	ActionEdit      Action = "edit"
	ActionEditState Action = "edit.state"
	ActionDelete    Action = "delete"
)

// Resource is the scope an action is authorised against: a single
// category, or the whole component when CategoryID is zero.
type Resource struct {
	CategoryID uint
}

func Component() Resource {
	return Resource{}
}

func Category(id uint) Resource {
	return Resource{CategoryID: id}
}

// Gate authorises an action against a resource scope.
type Gate interface {
	Authorise(actor Identity, action Action, resource Resource) bool
}

var _ Gate = (*GrantGate)(nil)

// GrantGate holds explicit per-identity grants. A category-scoped check
// passes on a grant for that category or on a component-wide grant.
type GrantGate struct {
	component map[int64]mapset.Set[Action]
	category  map[int64]map[uint]mapset.Set[Action]
}

func NewGrantGate() *GrantGate {
	return &GrantGate{
		component: make(map[int64]mapset.Set[Action]),
		category:  make(map[int64]map[uint]mapset.Set[Action]),
	}
}

func (g *GrantGate) Allow(actor Identity, action Action, resource Resource) {
	if resource.CategoryID == 0 {
		if _, ok := g.component[actor.ID]; !ok {
			g.component[actor.ID] = mapset.NewSet[Action]()
		}
		g.component[actor.ID].Add(action)
		return
	}

	if _, ok := g.category[actor.ID]; !ok {
		g.category[actor.ID] = make(map[uint]mapset.Set[Action])
	}
	if _, ok := g.category[actor.ID][resource.CategoryID]; !ok {
		g.category[actor.ID][resource.CategoryID] = mapset.NewSet[Action]()
	}
	g.category[actor.ID][resource.CategoryID].Add(action)
}

func (g *GrantGate) Authorise(actor Identity, action Action, resource Resource) bool {
	if resource.CategoryID != 0 {
		if actions, ok := g.category[actor.ID][resource.CategoryID]; ok && actions.Contains(action) {
			return true
		}
	}

	if actions, ok := g.component[actor.ID]; ok {
		return actions.Contains(action)
	}

	return false
}

var _ Gate = (*AllowAll)(nil)

// AllowAll authorises every action, for trusted local invocations.
type AllowAll struct{}

func (AllowAll) Authorise(Identity, Action, Resource) bool {
	return true
}
