package criteria

// Builder 条件构建器：按添加顺序累积过滤条件，外加一个可选的排序指令
type Builder[T any] struct {
	chain   []Criteria[T]
	orderBy *OrderBy[T]
}

func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// AddCriteria 追加一个过滤条件，返回自身以支持链式调用
func (b *Builder[T]) AddCriteria(c Criteria[T]) *Builder[T] {
	b.chain = append(b.chain, c)
	return b
}

// SetOrderBy 设置排序指令，多次调用只保留最后一次
func (b *Builder[T]) SetOrderBy(o OrderBy[T]) *Builder[T] {
	b.orderBy = &o
	return b
}

// Build 把当前的条件链和排序指令快照成一个组合条件
// 构建后再修改 Builder 不影响已构建的组合，Builder 可重复 Build
func (b *Builder[T]) Build() Criteria[T] {
	chain := make([]Criteria[T], len(b.chain))
	copy(chain, b.chain)

	var orderBy *OrderBy[T]
	if b.orderBy != nil {
		o := *b.orderBy
		orderBy = &o
	}

	return &composite[T]{chain: chain, orderBy: orderBy}
}

// composite 组合条件：输入序列依次流过条件链中的每个条件，再按需排序
// 中途过滤为空也不跳过后续条件，组合求值始终等价于手工依次求值
// 条件链为空且没有排序指令时原样返回输入
type composite[T any] struct {
	chain   []Criteria[T]
	orderBy *OrderBy[T]
}

func (m *composite[T]) Evaluate(items []T) ([]T, error) {
	var err error
	result := items
	for _, c := range m.chain {
		result, err = c.Evaluate(result)
		if err != nil {
			return nil, err
		}
	}

	if m.orderBy != nil {
		result = m.orderBy.Apply(result)
	}

	return result, nil
}
