package equality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type entity struct {
	ID   uint64
	Name string
}

func TestBy(t *testing.T) {
	assert := assert.New(t)

	byID := By(func(e entity) uint64 { return e.ID })
	assert.True(byID.Equal(entity{ID: 1, Name: "a"}, entity{ID: 1, Name: "b"}))
	assert.False(byID.Equal(entity{ID: 1}, entity{ID: 2}))

	caseless := By(strings.ToLower)
	assert.True(caseless.Equal("Node", "NODE"))
	assert.False(caseless.Equal("Node", "Edge"))
}

func TestNatural(t *testing.T) {
	assert := assert.New(t)

	ints := Natural[int]()
	assert.True(ints.Equal(3, 3))
	assert.False(ints.Equal(3, 4))
}

func TestComparerFunc(t *testing.T) {
	assert := assert.New(t)

	always := ComparerFunc[entity](func(a, b entity) bool { return true })
	assert.True(always.Equal(entity{ID: 1}, entity{ID: 2}))
}
