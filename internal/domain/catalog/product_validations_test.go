package catalog

import (
	"testing"
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStatus(t *testing.T) {
	t.Run("same status is reported before discontinued", func(t *testing.T) {
		err := ValidateStatus(ProductStatusDiscontinued, ProductStatusDiscontinued)
		require.Error(t, err)
		assert.Equal(t, "Product is already discontinued", err.Error())
	})

	t.Run("message uses lowercase status name", func(t *testing.T) {
		err := ValidateStatus(ProductStatusOutOfStock, ProductStatusOutOfStock)
		assert.Equal(t, "Product is already out_of_stock", err.Error())
	})

	t.Run("every non-terminal status may transition", func(t *testing.T) {
		for _, from := range AllProductStatuses {
			for _, to := range AllProductStatuses {
				err := ValidateStatus(from, to)
				switch {
				case from == to, from.IsTerminal():
					assert.True(t, shared.IsInvalidState(err), "%s -> %s", from, to)
				default:
					assert.NoError(t, err, "%s -> %s", from, to)
				}
			}
		}
	})
}

func TestValidatePrice(t *testing.T) {
	current := valueobject.MustNewMoney("10", valueobject.USD)

	assert.NoError(t, ValidatePrice(current, valueobject.MustNewMoney("0", valueobject.USD)))

	err := ValidatePrice(current, valueobject.Money{})
	require.Error(t, err)
	assert.True(t, shared.IsInvalidArgument(err))

	err = ValidatePrice(current, valueobject.MustNewMoney("10", valueobject.GBP))
	assert.True(t, shared.IsInvalidArgument(err))
}

func TestValidateProductCreation(t *testing.T) {
	params := newTestParams(t)

	t.Run("passes for complete input", func(t *testing.T) {
		err := ValidateProductCreation(params.Sku, params.Name, params.Description, params.Price, ProductStatusDraft, params.CategoryID, time.Now())
		assert.NoError(t, err)
	})

	t.Run("requires status", func(t *testing.T) {
		err := ValidateProductCreation(params.Sku, params.Name, params.Description, params.Price, "", params.CategoryID, time.Now())
		require.Error(t, err)
		assert.Equal(t, "Status is required", err.Error())
	})

	t.Run("requires created date", func(t *testing.T) {
		err := ValidateProductCreation(params.Sku, params.Name, params.Description, params.Price, ProductStatusDraft, params.CategoryID, time.Time{})
		require.Error(t, err)
		assert.True(t, shared.IsInvalidState(err))
		assert.Equal(t, "Created date is required", err.Error())
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		err := ValidateProductCreation(params.Sku, "Çãé", "Descrição ok", params.Price, ProductStatusDraft, params.CategoryID, time.Now())
		assert.NoError(t, err)
	})
}
