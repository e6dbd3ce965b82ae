package catalog

import (
	"testing"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpecification(t *testing.T) {
	t.Run("creates specification", func(t *testing.T) {
		spec, err := NewSpecification("Material", "Cotton")
		require.NoError(t, err)
		assert.Equal(t, "Material", spec.Name())
		assert.Equal(t, "Cotton", spec.Value())
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := NewSpecification("  ", "Cotton")
		require.Error(t, err)
		assert.True(t, shared.IsInvalidArgument(err))
		assert.Equal(t, "Name of specification is required", err.Error())
	})

	t.Run("requires value", func(t *testing.T) {
		_, err := NewSpecification("Material", "")
		require.Error(t, err)
		assert.Equal(t, "Value of specification is required", err.Error())
	})

	t.Run("equality is structural", func(t *testing.T) {
		a, _ := NewSpecification("Material", "Cotton")
		b, _ := NewSpecification("Material", "Cotton")
		c, _ := NewSpecification("Material", "Wool")
		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(c))
	})
}

func TestNewImage(t *testing.T) {
	t.Run("accepts absolute URL", func(t *testing.T) {
		img, err := NewImage("https://cdn.example.com/p/1.png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/p/1.png", img.URL())
	})

	t.Run("requires URL", func(t *testing.T) {
		_, err := NewImage("")
		require.Error(t, err)
		assert.True(t, shared.IsInvalidArgument(err))
		assert.Equal(t, "URL is required", err.Error())
	})

	t.Run("rejects relative or malformed URL", func(t *testing.T) {
		for _, raw := range []string{"images/1.png", "not a url", "http://"} {
			_, err := NewImage(raw)
			require.Error(t, err, raw)
			assert.Equal(t, "Invalid URL: "+raw, err.Error())
		}
	})

	t.Run("equality is by URL", func(t *testing.T) {
		a, _ := NewImage("https://cdn.example.com/a.png")
		b, _ := NewImage("https://cdn.example.com/a.png")
		assert.True(t, a.Equals(b))
	})
}

func TestIdentifiers(t *testing.T) {
	t.Run("generated product ids are unique", func(t *testing.T) {
		assert.NotEqual(t, NewProductID(), NewProductID())
	})

	t.Run("product id from nil uuid fails", func(t *testing.T) {
		_, err := ProductIDFrom(uuid.Nil)
		require.Error(t, err)
		assert.Equal(t, "Product ID cannot be null", err.Error())
	})

	t.Run("product id parses and compares by value", func(t *testing.T) {
		raw := uuid.New()
		a, err := ParseProductID(raw.String())
		require.NoError(t, err)
		b, err := ProductIDFrom(raw)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, raw.String(), a.String())
	})

	t.Run("product id rejects garbage", func(t *testing.T) {
		_, err := ParseProductID("abc")
		require.Error(t, err)
		assert.True(t, shared.IsInvalidArgument(err))
	})

	t.Run("category id is required", func(t *testing.T) {
		_, err := CategoryIDFrom(uuid.Nil)
		require.Error(t, err)
		assert.Equal(t, "Category ID is required", err.Error())

		_, err = ParseCategoryID("")
		assert.Equal(t, "Category ID is required", err.Error())
	})
}
