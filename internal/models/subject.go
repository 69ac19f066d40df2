package models

// Subjects lists the subjects a question can be posted under.
var Subjects = []string{
	"Mathematics",
	"Programming",
	"Science",
	"Writing",
	"Business",
	"Computer Science",
	"Economics",
	"Engineering",
	"Foreign Languages",
	"Health and Medical",
	"Humanities",
	"Law",
	"Rising Star",
}

func IsSubject(s string) bool {
	for _, subject := range Subjects {
		if subject == s {
			return true
		}
	}
	return false
}
