package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/pricebot/model"
)

func commodity(id string, price float64) *model.Commodity {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &model.Commodity{
		ID:       id,
		Name:     id,
		Unit:     "kg",
		Currency: "TWD",
		Price:    price,
		Prices: []model.PricePoint{
			{Date: day, Price: price - 1},
			{Date: day.AddDate(0, 0, 1), Price: price},
		},
	}
}

func TestStorage(t *testing.T) {
	backends := map[string]func() (Storage, error){
		"buntdb": FromMemory,
		"sqlite": FromSQLiteMemory,
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			store, err := open()
			require.NoError(t, err)

			// insertion order is not alphabetical
			require.NoError(t, store.SaveCommodity(commodity("pear", 60)))
			require.NoError(t, store.SaveCommodity(commodity("apple", 35.5)))
			require.NoError(t, store.SaveCommodity(commodity("banana", 28)))

			t.Run("insertion order", func(t *testing.T) {
				commodities, err := store.Commodities()
				require.NoError(t, err)
				require.Len(t, commodities, 3)
				assert.Equal(t, "pear", commodities[0].ID)
				assert.Equal(t, "apple", commodities[1].ID)
				assert.Equal(t, "banana", commodities[2].ID)

				apple := commodities[1]
				assert.Equal(t, 35.5, apple.Price)
				require.Len(t, apple.Prices, 2)
				assert.Equal(t, 34.5, apple.Prices[0].Price)
				assert.True(t, apple.Prices[1].Date.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
			})

			t.Run("overwrite keeps position", func(t *testing.T) {
				require.NoError(t, store.SaveCommodity(commodity("pear", 70)))

				commodities, err := store.Commodities()
				require.NoError(t, err)
				require.Len(t, commodities, 3)
				assert.Equal(t, "pear", commodities[0].ID)
				assert.Equal(t, 70.0, commodities[0].Price)
			})

			t.Run("filters", func(t *testing.T) {
				commodities, err := store.Commodities(WithID("banana", "apple"))
				require.NoError(t, err)
				require.Len(t, commodities, 2)
				assert.Equal(t, "apple", commodities[0].ID)
				assert.Equal(t, "banana", commodities[1].ID)

				commodities, err = store.Commodities(WithCurrency("USD"))
				require.NoError(t, err)
				assert.Empty(t, commodities)
			})
		})
	}
}
