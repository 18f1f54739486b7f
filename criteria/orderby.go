package criteria

import (
	"cmp"
	"slices"
)

// Direction 排序方向
type Direction int

const (
	Ascending  Direction = 1  // 升序
	Descending Direction = -1 // 降序
)

// OrderBy 排序指令：按选定属性和方向对序列排序
// 零值没有属性选择器，不可用，必须通过 NewOrderBy 构造
type OrderBy[T any] struct {
	compare   func(a, b T) int
	direction Direction
}

// NewOrderBy 用属性选择器和方向构造排序指令
// 方向取 Descending 之外的任何值都按升序处理，零值即缺省升序
func NewOrderBy[T any, K cmp.Ordered](key func(item T) K, direction Direction) OrderBy[T] {
	return OrderBy[T]{
		compare: func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		},
		direction: direction,
	}
}

// Apply 对序列做稳定排序：属性值相等的元素保持原有相对顺序
// 降序通过反转比较结果实现，而不是反转序列，以保证稳定性
// 排序在原切片上进行，调用方应以返回值为准
func (o OrderBy[T]) Apply(items []T) []T {
	if o.compare == nil {
		panic("criteria: zero OrderBy has no attribute selector; use NewOrderBy")
	}
	sign := 1
	if o.direction == Descending {
		sign = -1
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return sign * o.compare(a, b)
	})
	return items
}
