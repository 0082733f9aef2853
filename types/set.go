package types

// Set is an insertion-ordered set; Array returns elements in the order they
// were first inserted.
type Set[T comparable] struct {
	hash  map[T]struct{}
	order []T
}

func NewSet[T comparable](items ...T) *Set[T] {
	set := &Set[T]{
		hash: make(map[T]struct{}),
	}
	set.Insert(items...)
	return set
}

func (s *Set[T]) Insert(items ...T) {
	for _, item := range items {
		if _, found := s.hash[item]; found {
			continue
		}
		s.hash[item] = struct{}{}
		s.order = append(s.order, item)
	}
}

func (s *Set[T]) Exists(item T) bool {
	_, found := s.hash[item]
	return found
}

func (s *Set[T]) Array() []T {
	return append([]T{}, s.order...)
}

func (s *Set[T]) Len() int {
	return len(s.hash)
}
