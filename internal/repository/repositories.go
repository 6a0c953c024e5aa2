package repository

// Repositories groups every repository so services receive one value.
type Repositories struct {
	ShoppingList *ShoppingListRepository
	Reports      *ReportRepository
}

// NewRepositories constructs the repository container.
func NewRepositories() *Repositories {
	return &Repositories{
		ShoppingList: NewShoppingListRepository(),
		Reports:      NewReportRepository(),
	}
}
