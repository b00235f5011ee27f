package rings

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// === Layered Drawings ======================================================

// Drawing collects polylines tagged with a layer ID. Layer IDs start at 1.
// Layers are iterated in ascending order of their IDs, polylines within a
// layer in insertion order.
type Drawing struct {
	layers *treemap.Map // int => Polylines
}

// NewDrawing creates an empty drawing.
func NewDrawing() *Drawing {
	return &Drawing{layers: treemap.NewWithIntComparator()}
}

// Add appends polylines to a layer, creating the layer if necessary.
func (d *Drawing) Add(layer int, lines Polylines) {
	var pls Polylines
	if v, found := d.layers.Get(layer); found {
		pls = v.(Polylines)
	}
	pls.Extend(lines)
	d.layers.Put(layer, pls)
	tracer().Debugf("drawing: layer %d has %d polylines", layer, len(pls))
}

// Layers returns the IDs of all layers, in ascending order.
func (d *Drawing) Layers() []int {
	keys := d.layers.Keys()
	ids := make([]int, len(keys))
	for i, k := range keys {
		ids[i] = k.(int)
	}
	return ids
}

// Layer returns the polylines of a layer, or nil if it does not exist.
func (d *Drawing) Layer(layer int) Polylines {
	if v, found := d.layers.Get(layer); found {
		return v.(Polylines)
	}
	return nil
}

// Len returns the number of polylines over all layers.
func (d *Drawing) Len() int {
	n := 0
	it := d.layers.Iterator()
	for it.Next() {
		n += len(it.Value().(Polylines))
	}
	return n
}

// Map replaces the polylines of every layer by the result of f.
// Finishing steps like simplification are applied layer by layer this way.
func (d *Drawing) Map(f func(layer int, lines Polylines) Polylines) {
	for _, id := range d.Layers() {
		d.layers.Put(id, f(id, d.Layer(id)))
	}
}

// Bounds returns the bounding rectangle of all layers. The second return
// value is false for a drawing without any points.
func (d *Drawing) Bounds() (Rect, bool) {
	var all Polylines
	it := d.layers.Iterator()
	for it.Next() {
		all = append(all, it.Value().(Polylines)...)
	}
	return all.Bounds()
}
