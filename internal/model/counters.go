package model

// Counters tracks how many categories were constructed and how many products
// were added to them. Counts only grow until Reset is called.
// Not safe for concurrent use.
type Counters struct {
	categories int
	products   int
}

// CounterSnapshot is a point-in-time copy of Counters.
type CounterSnapshot struct {
	Categories int
	Products   int
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{}
}

// Categories returns the number of categories constructed.
func (c *Counters) Categories() int {
	return c.categories
}

// Products returns the number of products added across all categories.
func (c *Counters) Products() int {
	return c.products
}

// Reset zeroes both counters.
func (c *Counters) Reset() {
	c.categories = 0
	c.products = 0
}

// Snapshot copies the current counts.
func (c *Counters) Snapshot() CounterSnapshot {
	return CounterSnapshot{Categories: c.categories, Products: c.products}
}

// Since returns the counts accumulated after an earlier snapshot.
func (c *Counters) Since(s CounterSnapshot) CounterSnapshot {
	return CounterSnapshot{
		Categories: c.categories - s.Categories,
		Products:   c.products - s.Products,
	}
}

func (c *Counters) categoryCreated(products int) {
	if c == nil {
		return
	}
	c.categories++
	c.products += products
}

func (c *Counters) productAdded() {
	if c == nil {
		return
	}
	c.products++
}
