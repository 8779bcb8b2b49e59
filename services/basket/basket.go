package basket

import (
	"sync"

	"github.com/MarcGrol/shopfront/lib/mybus"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/shop/shopevents"
)

// Item wraps a selected product. The basket holds at most one item per
// product uid: there is no quantity, a product is either in or out.
type Item struct {
	Product catalog.Product
}

// Basket owns the set of selected products. Every mutating operation
// terminates in exactly one "basket:changed" emission, never zero and
// never more than one, so subscribers can treat the basket as
// consistent as soon as the call returns.
type Basket struct {
	mutex     sync.Mutex
	items     []Item
	publisher mybus.EventPublisher
}

// Use dependency injection to isolate the bus and easy testing
func New(publisher mybus.EventPublisher) *Basket {
	return &Basket{
		publisher: publisher,
	}
}

// Add appends the product unless it is already present; a duplicate add
// leaves the state untouched but still notifies.
func (b *Basket) Add(product catalog.Product) {
	b.mutex.Lock()
	if !b.contains(product.UID) {
		b.items = append(b.items, Item{Product: product})
	}
	state := b.state()
	b.mutex.Unlock()

	b.publisher.Emit(state)
}

// Remove drops the matching item; removing an absent uid is a no-op
// that still notifies.
func (b *Basket) Remove(productUID string) {
	b.mutex.Lock()
	kept := b.items[:0]
	for _, item := range b.items {
		if item.Product.UID != productUID {
			kept = append(kept, item)
		}
	}
	b.items = kept
	state := b.state()
	b.mutex.Unlock()

	b.publisher.Emit(state)
}

func (b *Basket) Clear() {
	b.mutex.Lock()
	b.items = nil
	state := b.state()
	b.mutex.Unlock()

	b.publisher.Emit(state)
}

func (b *Basket) Contains(productUID string) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.contains(productUID)
}

func (b *Basket) Count() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return len(b.items)
}

func (b *Basket) IsEmpty() bool {
	return b.Count() == 0
}

// Total sums the item prices, counting a priceless product as 0.
func (b *Basket) Total() int64 {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.total()
}

// Items returns a copy in insertion order.
func (b *Basket) Items() []Item {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	items := make([]Item, len(b.items))
	copy(items, b.items)

	return items
}

func (b *Basket) contains(productUID string) bool {
	for _, item := range b.items {
		if item.Product.UID == productUID {
			return true
		}
	}
	return false
}

func (b *Basket) total() int64 {
	var total int64
	for _, item := range b.items {
		total += item.Product.PriceValue()
	}
	return total
}

// state derives the event payload; it is recomputed on every mutation,
// never stored.
func (b *Basket) state() shopevents.BasketChanged {
	uids := make([]string, 0, len(b.items))
	for _, item := range b.items {
		uids = append(uids, item.Product.UID)
	}

	return shopevents.BasketChanged{
		ProductUIDs: uids,
		Total:       b.total(),
	}
}
