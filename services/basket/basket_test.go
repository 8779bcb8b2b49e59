package basket

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopfront/lib/mybus"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/shop/shopevents"
)

func price(value int64) *int64 {
	return &value
}

var (
	racket = catalog.Product{UID: "product_racket", Title: "Tennis racket", Category: catalog.CategoryOther, Price: price(100)}
	balls  = catalog.Product{UID: "product_balls", Title: "Tennis balls", Category: catalog.CategoryOther, Price: price(200)}
	poster = catalog.Product{UID: "product_poster", Title: "Free poster", Category: catalog.CategoryAdditional, Price: nil}
)

func setup(t *testing.T) (*Basket, *[]shopevents.BasketChanged) {
	bus := mybus.New()
	changes := []shopevents.BasketChanged{}
	bus.On(shopevents.BasketChangedName, func(e mybus.Event) {
		changes = append(changes, e.(shopevents.BasketChanged))
	})

	return New(bus), &changes
}

func TestBasket(t *testing.T) {

	t.Run("Add appends in insertion order", func(t *testing.T) {
		// given
		basket, changes := setup(t)

		// when
		basket.Add(racket)
		basket.Add(balls)

		// then
		assert.Equal(t, 2, basket.Count())
		assert.Equal(t, int64(300), basket.Total())
		assert.Len(t, *changes, 2)
		assert.Equal(t, []string{"product_racket", "product_balls"}, (*changes)[1].ProductUIDs)
		assert.Equal(t, int64(300), (*changes)[1].Total)
	})

	t.Run("Re-adding a present product is a no-op but still notifies once", func(t *testing.T) {
		// given
		basket, changes := setup(t)
		basket.Add(racket)

		// when
		basket.Add(racket)

		// then: observable state equals a single add
		assert.Equal(t, 1, basket.Count())
		assert.Equal(t, int64(100), basket.Total())
		assert.Len(t, *changes, 2)
		assert.Equal(t, (*changes)[0], (*changes)[1])
	})

	t.Run("Remove drops the matching item", func(t *testing.T) {
		// given
		basket, changes := setup(t)
		basket.Add(racket)
		basket.Add(balls)

		// when
		basket.Remove(racket.UID)

		// then
		assert.Equal(t, 1, basket.Count())
		assert.False(t, basket.Contains(racket.UID))
		assert.True(t, basket.Contains(balls.UID))
		assert.Equal(t, int64(200), basket.Total())
		assert.Len(t, *changes, 3)
	})

	t.Run("Removing an absent product is a no-op but still notifies once", func(t *testing.T) {
		// given
		basket, changes := setup(t)
		basket.Add(racket)

		// when
		basket.Remove("product_unknown")

		// then
		assert.Equal(t, 1, basket.Count())
		assert.Len(t, *changes, 2)
	})

	t.Run("Priceless products count as zero", func(t *testing.T) {
		// given
		basket, _ := setup(t)

		// when
		basket.Add(racket)
		basket.Add(poster)

		// then
		assert.Equal(t, 2, basket.Count())
		assert.Equal(t, int64(100), basket.Total())
	})

	t.Run("Clear empties the basket", func(t *testing.T) {
		// given
		basket, changes := setup(t)
		basket.Add(racket)
		basket.Add(balls)

		// when
		basket.Clear()

		// then
		assert.True(t, basket.IsEmpty())
		assert.Equal(t, 0, basket.Count())
		assert.Equal(t, int64(0), basket.Total())
		last := (*changes)[len(*changes)-1]
		assert.Empty(t, last.ProductUIDs)
		assert.Equal(t, int64(0), last.Total)
	})

	t.Run("Count equals distinct adds minus removes", func(t *testing.T) {
		// given
		basket, _ := setup(t)

		// when
		basket.Add(racket)
		basket.Add(balls)
		basket.Add(racket)
		basket.Remove(balls.UID)
		basket.Add(poster)

		// then
		assert.Equal(t, 2, basket.Count())
	})

	t.Run("Items returns a defensive copy", func(t *testing.T) {
		// given
		basket, _ := setup(t)
		basket.Add(racket)

		// when
		items := basket.Items()
		items[0] = Item{Product: balls}

		// then
		assert.True(t, basket.Contains(racket.UID))
		assert.False(t, basket.Contains(balls.UID))
	})
}
