package main

import (
	"fmt"

	"linuxea.github.com/criteria/criteria"
)

func main() {

	people := []Person{
		{Name: "Alice", Age: 24},
		{Name: "Bob", Age: 17},
		{Name: "Charlie", Age: 35},
		{Name: "Dave", Age: 29},
		{Name: "Eve", Age: 12},
		{Name: "Frank", Age: 41},
		{Name: "Alex", Age: 35},
	}

	// 动态条件：不需要定义具名类型
	young := criteria.New(func(p Person) bool { return p.Age < 30 })
	senior := criteria.New(func(p Person) bool { return p.Age >= 40 })

	byAge := criteria.NewOrderBy(func(p Person) int { return p.Age }, criteria.Ascending)

	result, err := criteria.NewBuilder[Person]().
		AddCriteria(adultCriteria{}).
		AddCriteria(criteria.Or(young, senior)).
		SetOrderBy(byAge).
		Build().
		Evaluate(people)
	if err != nil {
		panic(err)
	}
	fmt.Println("筛选结果:", result)

	// 排除未成年人
	minors, err := criteria.Not[Person](adultCriteria{}).Evaluate(people)
	if err != nil {
		panic(err)
	}
	fmt.Println("未成年人:", minors)

	// 按年龄段分组
	groups := criteria.GroupsExclusive(people,
		func(p Person) bool { return p.Age >= 35 },
		func(p Person) bool { return p.Age >= 18 },
	)
	fmt.Println("分组结果:", criteria.Flat(groups))
}

type Person struct {
	Name string
	Age  int
}

// adultCriteria 具名条件：保留成年人
type adultCriteria struct{}

func (adultCriteria) Evaluate(items []Person) ([]Person, error) {
	var result []Person
	for _, p := range items {
		if p.Age >= 18 {
			result = append(result, p)
		}
	}
	return result, nil
}
