package portal

import (
	"testing"

	"github.com/auy-connect/student-portal/internal/sheets"
)

func demoBundle(t *testing.T) Bundle {
	t.Helper()
	return Derive(sheets.DemoRecord(), "alex@auy.edu.mm")
}

func TestDashboardView(t *testing.T) {
	v := demoBundle(t).DashboardView()
	if v.GPA != 3.6 {
		t.Errorf("GPA = %v, want 3.6", v.GPA)
	}
	if v.Standing != "Good Standing" {
		t.Errorf("Standing = %q", v.Standing)
	}
	if v.CourseCount != 5 {
		t.Errorf("CourseCount = %d", v.CourseCount)
	}
	if len(v.RecentGrades) != 3 {
		t.Errorf("RecentGrades = %d, want capped at 3", len(v.RecentGrades))
	}
	// mean of 28/30, 22/30, 29/30, 30/30, 24/30 as whole percents
	if v.AverageAttendance != 89 {
		t.Errorf("AverageAttendance = %d, want 89", v.AverageAttendance)
	}
}

func TestCoursesView(t *testing.T) {
	b := demoBundle(t)
	views := b.CoursesView()
	if len(views) != 5 {
		t.Fatalf("views = %d", len(views))
	}
	first := views[0]
	if first.Grade != "A" || first.Progress != 97 || first.InProgress {
		t.Errorf("graded course view = %+v", first)
	}

	// an ungraded course shows the fixed in-progress bar
	b2 := Derive(&sheets.StudentRecord{
		Semester: "Spring 2025",
		Courses:  []sheets.CourseRecord{{CourseID: "CS101", CourseName: "Intro"}},
	}, "x@auy.edu.mm")
	uv := b2.CoursesView()[0]
	if !uv.InProgress || uv.Progress != inProgressPercent {
		t.Errorf("ungraded course view = %+v", uv)
	}
}

func TestGradesView(t *testing.T) {
	b := demoBundle(t)

	v := b.GradesView("")
	if v.Semester != "Spring 2025" {
		t.Errorf("default semester = %q", v.Semester)
	}
	if v.SemesterGPA != 3.6 {
		t.Errorf("SemesterGPA = %v, want 3.6", v.SemesterGPA)
	}
	if len(v.Grades) != 5 {
		t.Fatalf("grade rows = %d", len(v.Grades))
	}
	if v.Grades[0].CourseName != "Data Structures & Algorithms" || v.Grades[0].Instructor != "Dr. Sarah Chen" {
		t.Errorf("row not joined with course info: %+v", v.Grades[0])
	}

	empty := b.GradesView("Fall 2019")
	if empty.SemesterGPA != 0 || len(empty.Grades) != 0 {
		t.Errorf("unknown semester should be empty, got %+v", empty)
	}
}

func TestCreditsView(t *testing.T) {
	v := demoBundle(t).CreditsView()
	if v.TotalEarned != 0 {
		t.Errorf("TotalEarned = %d, want 0 (no multi-term history)", v.TotalEarned)
	}
	if v.InProgress != 15 {
		t.Errorf("InProgress = %d, want 15", v.InProgress)
	}
	if v.Remaining != 105 {
		t.Errorf("Remaining = %d, want 105", v.Remaining)
	}
	if v.GradProgress != 13 {
		t.Errorf("GradProgress = %d, want 13", v.GradProgress)
	}
	if len(v.BySemester) != 1 || v.BySemester[0].Credits != 15 || !v.BySemester[0].Current {
		t.Errorf("BySemester = %+v", v.BySemester)
	}
}

func TestCreditsViewRemainingFloorsAtZero(t *testing.T) {
	b := Bundle{TotalCredits: 90, CreditsInProgress: 45}
	if got := b.CreditsView().Remaining; got != 0 {
		t.Fatalf("Remaining = %d, want 0", got)
	}
}
