package demo

// Student is a sample record for the grouping and let-binding sections.
type Student struct {
	First  string
	Last   string
	ID     int
	Scores []int
}

// TotalScore is the sum of the four test scores.
func (s Student) TotalScore() int {
	return s.Scores[0] + s.Scores[1] + s.Scores[2] + s.Scores[3]
}

// Students returns the class roster, in enrolment order.
func Students() []Student {
	students := []Student{
		{First: "Svetlana", Last: "Omelchenko", ID: 111, Scores: []int{97, 92, 81, 60}},
		{First: "Claire", Last: "O'Donnell", ID: 112, Scores: []int{75, 84, 91, 39}},
		{First: "Sven", Last: "Mortensen", ID: 113, Scores: []int{88, 94, 65, 91}},
		{First: "Cesar", Last: "Garcia", ID: 114, Scores: []int{97, 89, 85, 82}},
		{First: "Debra", Last: "Garcia", ID: 115, Scores: []int{35, 72, 91, 70}},
		{First: "Fadi", Last: "Fakhouri", ID: 116, Scores: []int{99, 86, 90, 94}},
		{First: "Hanying", Last: "Feng", ID: 117, Scores: []int{93, 92, 80, 87}},
		{First: "Hugo", Last: "Garcia", ID: 118, Scores: []int{92, 90, 83, 78}},
		{First: "Lance", Last: "Tucker", ID: 119, Scores: []int{68, 79, 88, 92}},
		{First: "Terry", Last: "Adams", ID: 120, Scores: []int{99, 82, 81, 79}},
		{First: "Eugene", Last: "Zabokritski", ID: 121, Scores: []int{96, 85, 91, 60}},
		{First: "Michael", Last: "Tucker", ID: 122, Scores: []int{94, 92, 91, 91}},
	}
	// Late enrolment.
	return append(students, Student{First: "Jake", Last: "Keller", ID: 123, Scores: []int{20, 80, 22, 54}})
}
