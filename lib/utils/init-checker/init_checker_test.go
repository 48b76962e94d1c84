package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface {
	Do()
}

type providerImpl struct{}

func (p *providerImpl) Do() {}

func TestCheckInit(t *testing.T) {
	t.Run(`initialized dependencies`, func(t *testing.T) {
		var p provider = &providerImpl{}
		require.NotPanics(t, func() {
			CheckInit("store", p, "name", "value")
		})
	})

	t.Run(`nil interface`, func(t *testing.T) {
		var p provider
		require.PanicsWithValue(t, "store dependency not initialized", func() {
			CheckInit("store", p)
		})
	})

	t.Run(`typed nil pointer`, func(t *testing.T) {
		var impl *providerImpl
		var p provider = impl
		require.Panics(t, func() {
			CheckInit("store", p)
		})
	})

	t.Run(`odd arguments`, func(t *testing.T) {
		require.Panics(t, func() {
			CheckInit("store")
		})
	})
}
