package criteria

// And 组合两个条件：第二个条件在第一个条件的结果上继续过滤
func And[T any](a, b Criteria[T]) Criteria[T] {
	return andCriteria[T]{a: a, b: b}
}

type andCriteria[T any] struct {
	a Criteria[T]
	b Criteria[T]
}

func (c andCriteria[T]) Evaluate(items []T) ([]T, error) {
	result, err := c.a.Evaluate(items)
	if err != nil {
		return nil, err
	}
	return c.b.Evaluate(result)
}

// Or 组合两个条件：两个条件分别对原始序列求值，结果按值相等去重合并
// 结果顺序是先 a 的命中，再 b 中未包含的命中，各自保持原有相对顺序
func Or[T comparable](a, b Criteria[T]) Criteria[T] {
	return orCriteria[T]{a: a, b: b}
}

type orCriteria[T comparable] struct {
	a Criteria[T]
	b Criteria[T]
}

func (c orCriteria[T]) Evaluate(items []T) ([]T, error) {
	first, err := c.a.Evaluate(items)
	if err != nil {
		return nil, err
	}
	second, err := c.b.Evaluate(items)
	if err != nil {
		return nil, err
	}

	seen := make(map[T]struct{}, len(first)+len(second))
	var result []T
	for _, item := range first {
		if _, ok := seen[item]; ok {
			continue
		}
		result = append(result, item)
		seen[item] = struct{}{}
	}
	for _, item := range second {
		if _, ok := seen[item]; ok {
			continue
		}
		result = append(result, item)
		seen[item] = struct{}{}
	}

	return result, nil
}

// Not 取反：保留原始序列中不被 a 命中的元素，保持原有相对顺序
func Not[T comparable](a Criteria[T]) Criteria[T] {
	return notCriteria[T]{a: a}
}

type notCriteria[T comparable] struct {
	a Criteria[T]
}

func (c notCriteria[T]) Evaluate(items []T) ([]T, error) {
	matched, err := c.a.Evaluate(items)
	if err != nil {
		return nil, err
	}

	excluded := valueSet(matched)
	var result []T
	for _, item := range items {
		if _, ok := excluded[item]; !ok {
			result = append(result, item)
		}
	}

	return result, nil
}
