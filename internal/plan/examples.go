package plan

// exampleCourses is a starter catalogue for new plans.
var exampleCourses = []struct {
	code    string
	term    Term
	credits int
}{
	{"MAT100", TermAutumn, 10},
	{"DAT120", TermAutumn, 10},
	{"FYS102", TermAutumn, 5},
	{"KJE101", TermAutumn, 5},
	{"ELE100", TermAutumn, 10},
	{"MAT200", TermSpring, 10},
	{"DAT130", TermSpring, 10},
	{"ELE130", TermSpring, 10},
	{"ELE140", TermSpring, 10},
	{"BIO110", TermSpring, 10},
	{"DAT200", TermAutumn, 10},
	{"DAT250", TermAutumn, 10},
	{"DAT320", TermAutumn, 10},
	{"MTE200", TermAutumn, 10},
	{"MTE210", TermAutumn, 10},
}

// SeedExamples registers the example catalogue. Codes that already exist
// are skipped. It returns the courses that were added.
func SeedExamples(s *Store) []Course {
	added := []Course{}
	for _, ex := range exampleCourses {
		c, err := s.AddCourse(ex.code, ex.term, ex.credits)
		if err != nil {
			continue
		}
		added = append(added, c)
	}
	return added
}
