package models

// Categories is the fixed set a fact can belong to. It is the single
// source of truth: the validator, the seed data and the client all read
// this slice instead of carrying their own copy.
var Categories = []string{
	"technology",
	"science",
	"finance",
	"society",
	"entertainment",
	"health",
	"history",
	"news",
}

// ValidCategory reports membership in Categories, case-sensitive.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
