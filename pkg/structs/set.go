package structs

import "iter"

type empty = struct{}

// Set — простое множество для значений типа T
type Set[T comparable] map[T]empty

// NewSet создаёт множество из перечисленных значений
func NewSet[T comparable](values ...T) Set[T] {
	res := make(Set[T], len(values))
	for _, v := range values {
		res[v] = empty{}
	}
	return res
}

// Add добавляет элемент в множество
func (s Set[T]) Add(value T) {
	s[value] = empty{}
}

// Contains проверяет наличие элемента
func (s Set[T]) Contains(value T) bool {
	_, exists := s[value]
	return exists
}

// Size возвращает количество элементов
func (s Set[T]) Size() int {
	return len(s)
}

// Slice возвращает все элементы множества (порядок не определён)
func (s Set[T]) Slice() []T {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	return values
}

func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal проверяет совпадение множеств
func (s Set[T]) Equal(other Set[T]) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// IsSubsetOf проверяет, является ли s подмножеством other
func (s Set[T]) IsSubsetOf(other Set[T]) bool {
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}
