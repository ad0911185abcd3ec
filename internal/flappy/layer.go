package flappy

import "slices"

// scroller is the capability shared by every scrolling entity.
type scroller interface {
	Offscreen() bool
}

// updateLayer visits a layer in reverse index order and drops entities that
// are off screen after their visit. Walking backwards keeps deletions from
// skipping or repeating the next element.
func updateLayer[T any, P interface {
	*T
	scroller
}](items []T, visit func(P)) []T {
	for i := len(items) - 1; i >= 0; i-- {
		e := P(&items[i])
		visit(e)
		if e.Offscreen() {
			items = slices.Delete(items, i, i+1)
		}
	}
	return items
}
