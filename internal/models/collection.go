package models

import "slices"

// Record is anything stored in an id-keyed clip collection
type Record interface {
	RecordID() int
}

// NextID returns the id the next record appended to items should get:
// 0 for an empty collection, otherwise the largest existing id plus one.
// It only looks at the slice it is given, never at persisted state.
// No high-water mark is kept: once the record holding the largest id is
// removed, that id is handed out again.
func NextID[T Record](items []T) int {
	next := 0
	for _, item := range items {
		if id := item.RecordID(); id >= next {
			next = id + 1
		}
	}
	return next
}

// Find returns the record with the given id
func Find[T Record](items []T, id int) (T, bool) {
	idx := slices.IndexFunc(items, func(item T) bool { return item.RecordID() == id })
	if idx < 0 {
		var zero T
		return zero, false
	}
	return items[idx], true
}

// Update applies fn to the record with the given id in place.
// Returns false and leaves items untouched when no record matches.
func Update[T Record](items []T, id int, fn func(*T)) bool {
	for i := range items {
		if items[i].RecordID() == id {
			fn(&items[i])
			return true
		}
	}
	return false
}

// Remove drops the record with the given id, keeping the order of the rest
func Remove[T Record](items []T, id int) ([]T, bool) {
	before := len(items)
	items = slices.DeleteFunc(items, func(item T) bool { return item.RecordID() == id })
	return items, len(items) != before
}
