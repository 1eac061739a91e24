package imports

import "fmt"

// Builder accumulates payment orders for one import batch. Orders of each
// kind keep their relative insertion order, but Build always emits domestic
// orders first, then euro, then foreign, because the bank's import schema
// processes the blocks in that order.
type Builder struct {
	domestic []DomesticOrder
	euro     []EuroOrder
	foreign  []ForeignOrder
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Domestic adds a domestic order after checking its required fields and
// closed code sets.
func (b *Builder) Domestic(o DomesticOrder) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("domestic order: %w", err)
	}
	b.domestic = append(b.domestic, o)
	return nil
}

// Euro adds a euro (T2) order.
func (b *Builder) Euro(o EuroOrder) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("euro order: %w", err)
	}
	b.euro = append(b.euro, o)
	return nil
}

// Foreign adds a foreign order.
func (b *Builder) Foreign(o ForeignOrder) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("foreign order: %w", err)
	}
	b.foreign = append(b.foreign, o)
	return nil
}

// Build snapshots the accumulated orders into an Import, regrouped by kind,
// and drains the builder. A reused builder starts over from empty.
func (b *Builder) Build() Import {
	orders := make([]Order, 0, len(b.domestic)+len(b.euro)+len(b.foreign))
	for _, o := range b.domestic {
		orders = append(orders, o)
	}
	for _, o := range b.euro {
		orders = append(orders, o)
	}
	for _, o := range b.foreign {
		orders = append(orders, o)
	}
	b.domestic = nil
	b.euro = nil
	b.foreign = nil
	return Import{Orders: orders}
}
