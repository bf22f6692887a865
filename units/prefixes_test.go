package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupPrefix(t *testing.T) {
	t.Run("known prefix", func(t *testing.T) {
		p, ok := lookupPrefix("k")
		assert.True(t, ok)
		assert.Equal(t, 1e+3, p.multiplier)
		assert.False(t, p.sub)
	})

	t.Run("two letter da prefix", func(t *testing.T) {
		p, ok := lookupPrefix("da")
		assert.True(t, ok)
		assert.Equal(t, 1e+1, p.multiplier)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, ok := lookupPrefix("xx")
		assert.False(t, ok)
	})
}

func TestPrefixClass_Allows(t *testing.T) {
	assert.True(t, prefixAny.allowsSub())
	assert.True(t, prefixAny.allowsSuper())

	assert.True(t, prefixSubOnly.allowsSub())
	assert.False(t, prefixSubOnly.allowsSuper())

	assert.False(t, prefixSuperOnly.allowsSub())
	assert.True(t, prefixSuperOnly.allowsSuper())

	assert.False(t, prefixNone.allowsSub())
	assert.False(t, prefixNone.allowsSuper())
}

func TestPrefixEntry_AllowsFor(t *testing.T) {
	subPrefix, _ := lookupPrefix("m")
	superPrefix, _ := lookupPrefix("k")

	anyAtom := atomEntry{prefix: prefixAny}
	subOnlyAtom := atomEntry{prefix: prefixSubOnly}
	superOnlyAtom := atomEntry{prefix: prefixSuperOnly}

	assert.True(t, subPrefix.allowsFor(anyAtom))
	assert.True(t, superPrefix.allowsFor(anyAtom))

	assert.True(t, subPrefix.allowsFor(subOnlyAtom))
	assert.False(t, superPrefix.allowsFor(subOnlyAtom))

	assert.False(t, subPrefix.allowsFor(superOnlyAtom))
	assert.True(t, superPrefix.allowsFor(superOnlyAtom))
}
