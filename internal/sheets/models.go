package sheets

// StudentRecord is the raw shape returned by the Apps Script endpoint:
// one student, one term, courses with everything nested inside.
type StudentRecord struct {
	StudentName string         `json:"studentName"`
	StudentID   string         `json:"studentId"`
	StudyMode   string         `json:"studyMode"`
	Semester    string         `json:"semester"`
	Courses     []CourseRecord `json:"courses"`
}

type CourseRecord struct {
	CourseID   string     `json:"courseId"`
	CourseName string     `json:"courseName"`
	Credits    string     `json:"credits"` // stored as text in the sheet
	Instructor string     `json:"instructor"`
	Grade      string     `json:"grade,omitempty"`
	Score      string     `json:"score,omitempty"`
	Attendance *int       `json:"attendance"` // 0-100, nil when not tracked
	Attended   string     `json:"attended"`
	Total      string     `json:"total"`
	Materials  []Material `json:"materials"`
	Quizzes    []Quiz     `json:"quizzes"`
}

type Material struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // pdf|doc|slides|video, open set
}

type Quiz struct {
	Title  string  `json:"title"`
	Date   string  `json:"date"`   // YYYY-MM-DD
	Status string  `json:"status"` // Upcoming|Completed, open set
	Link   *string `json:"link"`
}

// User is one row of the directory sheet used for login lookup.
type User struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	StudentID string `json:"studentId,omitempty"`
	Program   string `json:"program,omitempty"`
}
