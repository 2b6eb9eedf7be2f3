// Package arena holds the element registry that owns every simulated
// object's lifecycle. Update and render dispatch run in insertion order,
// which is what makes per-tick reads of other elements' positions safe.
package arena

import "emoji-chase/internal/canvas"

// ID uniquely identifies a registered element.
type ID uint64

// NilID is the zero value — no valid element has this ID.
const NilID ID = 0

// Element is implemented by every simulated object. The arena guarantees
// Create runs before the first Render and Delete after the last one.
type Element interface {
	// Create allocates the element's shapes on the canvas.
	Create(c canvas.Canvas)
	// Update advances the element's simulation state by one tick.
	Update()
	// Render syncs the element's shapes to its current state.
	Render(c canvas.Canvas)
	// Delete releases the element's shapes.
	Delete(c canvas.Canvas)
}

// Arena is the ordered element registry.
type Arena struct {
	c      canvas.Canvas
	nextID ID
	order  []ID
	elems  map[ID]Element
}

// New creates an empty Arena drawing on the given canvas.
func New(c canvas.Canvas) *Arena {
	return &Arena{
		c:      c,
		nextID: 1,
		elems:  make(map[ID]Element),
	}
}

// Add registers an element, calls its Create, and returns its ID.
// Registration order is update/render order.
func (a *Arena) Add(e Element) ID {
	id := a.nextID
	a.nextID++
	a.order = append(a.order, id)
	a.elems[id] = e
	e.Create(a.c)
	return id
}

// Remove unregisters an element and calls its Delete.
// Unknown IDs are ignored.
func (a *Arena) Remove(id ID) {
	e, ok := a.elems[id]
	if !ok {
		return
	}
	e.Delete(a.c)
	delete(a.elems, id)
	for i, oid := range a.order {
		if oid == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Update runs one update pass over all elements in insertion order.
func (a *Arena) Update() {
	for _, id := range a.order {
		a.elems[id].Update()
	}
}

// Render runs one render pass over all elements in insertion order.
func (a *Arena) Render() {
	for _, id := range a.order {
		a.elems[id].Render(a.c)
	}
}

// Len reports the number of registered elements.
func (a *Arena) Len() int { return len(a.order) }

// Reset removes every element, calling Delete on each in insertion order.
func (a *Arena) Reset() {
	for _, id := range a.order {
		a.elems[id].Delete(a.c)
	}
	a.order = nil
	a.elems = make(map[ID]Element)
}
