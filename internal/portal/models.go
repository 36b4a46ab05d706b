package portal

// Page-facing view rows. Each is a flat projection of the raw course record
// plus the record's single term label; pages never see the raw shape.

type Student struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Semester  string `json:"semester"`
	Program   string `json:"program"`
}

type Course struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Credits    string `json:"credits"`
	Instructor string `json:"instructor"`
}

type Grade struct {
	CourseID string `json:"course_id"`
	Semester string `json:"semester"`
	Grade    string `json:"grade"`
	Score    string `json:"score"`
}

type Attendance struct {
	CourseID   string `json:"course_id"`
	Semester   string `json:"semester"`
	Attended   string `json:"attended"`
	Total      string `json:"total"`
	Percentage int    `json:"percentage"`
}

type Material struct {
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Icon     string `json:"icon"` // document|slide|video|other
}

type Quiz struct {
	CourseID string  `json:"course_id"`
	Title    string  `json:"title"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	Link     *string `json:"link"`
	Semester string  `json:"semester"`
}

// Bundle is the full view model derived from one raw record. It is an
// immutable snapshot: replaced wholesale on re-fetch, never patched.
type Bundle struct {
	Student           *Student     `json:"student"`
	Courses           []Course     `json:"courses"`
	Grades            []Grade      `json:"grades"`
	Attendance        []Attendance `json:"attendance"`
	Materials         []Material   `json:"materials"`
	Quizzes           []Quiz       `json:"quizzes"`
	GPA               float64      `json:"gpa"`
	TotalCredits      int          `json:"total_credits"`
	CreditsInProgress int          `json:"credits_in_progress"`
	AverageAttendance int          `json:"average_attendance"`
	CurrentSemester   string       `json:"current_semester"`
	Semesters         []string     `json:"semesters"`
	UsingMockData     bool         `json:"using_mock_data"`
}
