package domain

type Category struct {
	Id   CategoryId
	Name string
}
