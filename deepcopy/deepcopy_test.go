package deepcopy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sceneNode struct {
	Name     string            `json:"name"`
	Position []float64         `json:"position"`
	Tags     map[string]string `json:"tags"`
	Children []*sceneNode      `json:"children"`
}

func TestCopyNil(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ErrNilValue, Copy(nil, &sceneNode{}))
	assert.Equal(ErrNilValue, Copy(&sceneNode{}, nil))
}

func TestCopyIsolation(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		src = &sceneNode{
			Name:     "root",
			Position: []float64{1.0, 2.0, 3.0},
			Tags:     map[string]string{"layer": "world"},
			Children: []*sceneNode{
				{Name: "child"},
			},
		}

		dst = new(sceneNode)
	)

	require.NoError(Copy(dst, src))
	assert.Equal(src, dst)

	// mutating the copy must not leak into the source
	dst.Position[0] = 99.0
	dst.Tags["layer"] = "ui"
	dst.Children[0].Name = "changed"

	assert.Equal(1.0, src.Position[0])
	assert.Equal("world", src.Tags["layer"])
	assert.Equal("child", src.Children[0].Name)
}

func TestOf(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		src = sceneNode{
			Name: "root",
			Tags: map[string]string{"layer": "world"},
		}
	)

	dst, err := Of(src)
	require.NoError(err)
	assert.Equal(src, dst)

	dst.Tags["layer"] = "ui"
	assert.Equal("world", src.Tags["layer"])
}
