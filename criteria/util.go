package criteria

// valueSet 以值相等为准构建成员集合，供 Or 去重与 Not 排除使用
func valueSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// GroupsExclusive 按谓词顺序分组，每个元素只进入第一个命中的组，避免重复
func GroupsExclusive[T any](items []T, predicates ...Predicate[T]) [][]T {
	results := make([][]T, 0, len(predicates))
	used := make(map[int]bool) // 记录已经分组的元素下标

	for _, predicate := range predicates {
		var group []T
		for i, item := range items {
			if !used[i] && predicate(item) {
				group = append(group, item)
				used[i] = true
			}
		}
		results = append(results, group)
	}

	return results
}

// Flat 把分组结果扁平化成一个序列
func Flat[T any](groups [][]T) []T {
	var result []T
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}
