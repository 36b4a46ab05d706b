package portal

import (
	"reflect"
	"testing"

	"github.com/auy-connect/student-portal/internal/sheets"
)

func intp(n int) *int { return &n }

func TestCalculateGPA(t *testing.T) {
	cases := []struct {
		name    string
		courses []sheets.CourseRecord
		want    float64
	}{
		{
			name: "weighted two courses",
			courses: []sheets.CourseRecord{
				{Grade: "A", Credits: "3"},
				{Grade: "B+", Credits: "3"},
			},
			want: 3.65, // ((4.0*3)+(3.3*3))/6
		},
		{
			name:    "empty set",
			courses: nil,
			want:    0,
		},
		{
			name: "all ungraded",
			courses: []sheets.CourseRecord{
				{Credits: "3"},
				{Credits: "4"},
			},
			want: 0,
		},
		{
			name: "unknown grade counts credits at zero points",
			courses: []sheets.CourseRecord{
				{Grade: "A", Credits: "3"},
				{Grade: "P", Credits: "3"},
			},
			want: 2, // (4.0*3 + 0*3) / 6
		},
		{
			name: "unparsable credits default to 3",
			courses: []sheets.CourseRecord{
				{Grade: "A", Credits: "N/A"},
				{Grade: "B", Credits: "3"},
			},
			want: 3.5, // (4.0*3 + 3.0*3) / 6
		},
		{
			name: "lowercase grade",
			courses: []sheets.CourseRecord{
				{Grade: "a-", Credits: "3"},
			},
			want: 3.7,
		},
		{
			name: "rounds to two decimals",
			courses: []sheets.CourseRecord{
				{Grade: "A", Credits: "3"},
				{Grade: "B", Credits: "3"},
				{Grade: "C+", Credits: "3"},
			},
			want: 3.1, // 9.3/3 = 3.1
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateGPA(tc.courses); got != tc.want {
				t.Fatalf("CalculateGPA = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeriveNilRecord(t *testing.T) {
	b := Derive(nil, "x@auy.edu.mm")
	if b.Student != nil {
		t.Errorf("nil record should derive no student, got %+v", b.Student)
	}
	if b.CurrentSemester != "Spring 2025" {
		t.Errorf("CurrentSemester = %q", b.CurrentSemester)
	}
	if b.GPA != 0 || b.CreditsInProgress != 0 {
		t.Errorf("empty bundle has GPA=%v credits=%d", b.GPA, b.CreditsInProgress)
	}
}

func TestDeriveFiltersAndFlattens(t *testing.T) {
	raw := &sheets.StudentRecord{
		StudentName: "May Thandar",
		StudentID:   "STU-2024-042",
		StudyMode:   "Computer Science",
		Semester:    "Spring 2025",
		Courses: []sheets.CourseRecord{
			{
				CourseID: "CS301", CourseName: "Data Structures", Credits: "3", Instructor: "Dr. Chen",
				Grade: "A", Score: "94", Attendance: intp(90), Attended: "27", Total: "30",
				Materials: []sheets.Material{
					{Title: "Week 1", URL: "https://example.com/1", Type: "pdf"},
					{Title: "Week 2", URL: "https://example.com/2", Type: "mystery"},
				},
				Quizzes: []sheets.Quiz{
					{Title: "Quiz 1", Date: "2025-02-10", Status: "Completed"},
				},
			},
			{
				// no grade, no attendance: must produce no grade or
				// attendance row, not a default-filled one
				CourseID: "CS999", CourseName: "Seminar", Credits: "1", Instructor: "Staff",
			},
			{
				CourseID: "MATH201", CourseName: "Linear Algebra", Credits: "3", Instructor: "Dr. Rodriguez",
				Grade: "B", Score: "85", Attendance: intp(70), Attended: "21", Total: "30",
			},
		},
	}

	b := Derive(raw, "may@auy.edu.mm")

	if b.Student == nil || b.Student.Email != "may@auy.edu.mm" || b.Student.Program != "Computer Science" {
		t.Fatalf("student projection wrong: %+v", b.Student)
	}
	if len(b.Courses) != 3 {
		t.Fatalf("courses = %d, want 3", len(b.Courses))
	}
	if len(b.Grades) != 2 {
		t.Fatalf("grades = %d, want 2 (filtered, not default-filled)", len(b.Grades))
	}
	if len(b.Attendance) != 2 {
		t.Fatalf("attendance rows = %d, want 2", len(b.Attendance))
	}
	for _, g := range b.Grades {
		if g.Semester != "Spring 2025" {
			t.Errorf("grade row missing term label: %+v", g)
		}
	}

	// flattened materials carry the owning course id and an icon kind
	if len(b.Materials) != 2 {
		t.Fatalf("materials = %d, want 2", len(b.Materials))
	}
	if b.Materials[0].CourseID != "CS301" || b.Materials[0].Icon != "document" {
		t.Errorf("material row = %+v", b.Materials[0])
	}
	if b.Materials[1].Icon != "other" {
		t.Errorf("unknown type tag should degrade to default icon, got %q", b.Materials[1].Icon)
	}
	if len(b.Quizzes) != 1 || b.Quizzes[0].Semester != "Spring 2025" || b.Quizzes[0].CourseID != "CS301" {
		t.Errorf("quiz rows = %+v", b.Quizzes)
	}

	// average attendance excludes the untracked course: (90+70)/2
	if b.AverageAttendance != 80 {
		t.Errorf("AverageAttendance = %d, want 80", b.AverageAttendance)
	}

	// structural simplifications preserved
	if b.CreditsInProgress != 9 {
		t.Errorf("CreditsInProgress = %d, want course-count*3 = 9", b.CreditsInProgress)
	}
	if b.TotalCredits != 0 {
		t.Errorf("TotalCredits = %d, want 0", b.TotalCredits)
	}
}

func TestDeriveIsIdempotent(t *testing.T) {
	raw := sheets.DemoRecord()
	a := Derive(raw, "alex@auy.edu.mm")
	b := Derive(raw, "alex@auy.edu.mm")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("deriving the same record twice must yield identical bundles")
	}
}

func TestAverageAttendanceEmpty(t *testing.T) {
	if got := averageAttendance(nil); got != 0 {
		t.Fatalf("averageAttendance(nil) = %d, want 0", got)
	}
}

func TestAverageAttendanceFallsBackToPercentage(t *testing.T) {
	rows := []Attendance{
		{Attended: "", Total: "", Percentage: 50},
		{Attended: "30", Total: "30", Percentage: 100},
	}
	if got := averageAttendance(rows); got != 75 {
		t.Fatalf("averageAttendance = %d, want 75", got)
	}
}
