package criteria

// Criteria 接口定义了过滤条件的基本操作：
// 对输入序列求值，返回满足条件的子序列，保持原有相对顺序
type Criteria[T any] interface {
	Evaluate(items []T) (result []T, err error)
}

// Predicate 判断单个元素是否满足条件
type Predicate[T any] func(item T) bool

// New 把一个谓词函数包装成 Criteria，省去为一次性条件定义具名类型
func New[T any](predicate Predicate[T]) Criteria[T] {
	return predicateCriteria[T]{predicate: predicate}
}

type predicateCriteria[T any] struct {
	predicate Predicate[T]
}

func (c predicateCriteria[T]) Evaluate(items []T) ([]T, error) {
	var result []T
	for _, item := range items {
		if c.predicate(item) {
			result = append(result, item)
		}
	}
	return result, nil
}

// NonEmpty 装饰一个条件：求值结果为空时返回给定错误
func NonEmpty[T any](c Criteria[T], err error) Criteria[T] {
	return nonEmptyCriteria[T]{inner: c, err: err}
}

type nonEmptyCriteria[T any] struct {
	inner Criteria[T]
	err   error
}

func (c nonEmptyCriteria[T]) Evaluate(items []T) ([]T, error) {
	result, err := c.inner.Evaluate(items)
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, c.err // 没有元素满足条件
	}

	return result, nil
}
