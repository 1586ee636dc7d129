package domain

// Category is one of the categorical columns of the course catalog that is
// split out into its own reference collection.
type Category int

const (
	University Category = iota
	City
	Country
	Currency
)

// Categories lists every category in the order they are normalized.
var Categories = []Category{University, City, Country, Currency}

var categoryNames = map[Category]struct {
	column     string
	collection string
}{
	University: {"University", "universities"},
	City:       {"City", "cities"},
	Country:    {"Country", "countries"},
	Currency:   {"Currency", "currencies"},
}

// Column is the name of the CSV column and of the text field in the
// reference collection, e.g. "University".
func (c Category) Column() string {
	return categoryNames[c].column
}

// IDField is the name of the surrogate id field, e.g. "UniversityID".
func (c Category) IDField() string {
	return categoryNames[c].column + "ID"
}

// Collection is the name of the reference collection, e.g. "universities".
func (c Category) Collection() string {
	return categoryNames[c].collection
}

func (c Category) String() string {
	return c.Column()
}
