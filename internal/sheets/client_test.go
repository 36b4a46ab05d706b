package sheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchStudentNotConfigured(t *testing.T) {
	c := NewClient("")
	_, err := c.FetchStudent(context.Background(), "x@auy.edu.mm")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if _, err := c.FetchUsers(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("users err = %v, want ErrNotConfigured", err)
	}
}

func TestFetchStudentOK(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"action": r.URL.Query().Get("action"),
			"email":  r.URL.Query().Get("email"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"studentName": "May Thandar",
			"studentId": "STU-2024-042",
			"studyMode": "Computer Science",
			"semester": "Spring 2025",
			"courses": [
				{
					"courseId": "CS301",
					"courseName": "Data Structures",
					"credits": "3",
					"instructor": "Dr. Chen",
					"grade": "A",
					"score": "94",
					"attendance": 93,
					"attended": "28",
					"total": "30",
					"materials": [{"title": "Week 1", "url": "https://x", "type": "pdf"}],
					"quizzes": [{"title": "Quiz 1", "date": "2025-02-10", "status": "Completed", "link": null}]
				},
				{
					"courseId": "CS999",
					"courseName": "Seminar",
					"credits": "1",
					"instructor": "Staff",
					"grade": null,
					"score": null,
					"attendance": null,
					"attended": "",
					"total": "",
					"materials": [],
					"quizzes": []
				}
			]
		}`))
	}))
	defer srv.Close()

	rec, err := NewClient(srv.URL).FetchStudent(context.Background(), "may@auy.edu.mm")
	if err != nil {
		t.Fatal(err)
	}
	if gotQuery["action"] != "getStudentData" || gotQuery["email"] != "may@auy.edu.mm" {
		t.Errorf("query = %v", gotQuery)
	}
	if rec.StudentName != "May Thandar" || len(rec.Courses) != 2 {
		t.Fatalf("record = %+v", rec)
	}
	c0 := rec.Courses[0]
	if c0.Attendance == nil || *c0.Attendance != 93 {
		t.Errorf("attendance = %v", c0.Attendance)
	}
	if len(c0.Materials) != 1 || len(c0.Quizzes) != 1 || c0.Quizzes[0].Link != nil {
		t.Errorf("nested lists = %+v", c0)
	}
	// nulls in the sheet arrive as absent values, not faults
	c1 := rec.Courses[1]
	if c1.Grade != "" || c1.Attendance != nil {
		t.Errorf("null fields = %+v", c1)
	}
}

func TestFetchStudentHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchStudent(context.Background(), "x@auy.edu.mm")
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusInternalServerError {
		t.Fatalf("err = %v, want StatusError(500)", err)
	}
}

func TestFetchStudentRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "student not found for email"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchStudent(context.Background(), "nobody@auy.edu.mm")
	var re *RemoteError
	if !errors.As(err, &re) || re.Message != "student not found for email" {
		t.Fatalf("err = %v, want RemoteError", err)
	}
}

func TestFetchUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "getAllUsers" {
			t.Errorf("action = %q", r.URL.Query().Get("action"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"email": "may@auy.edu.mm", "name": "May Thandar", "program": "Computer Science"},
			{"email": "ko@auy.edu.mm"}
		]`))
	}))
	defer srv.Close()

	users, err := NewClient(srv.URL).FetchUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 || users[0].Name != "May Thandar" || users[1].Email != "ko@auy.edu.mm" {
		t.Fatalf("users = %+v", users)
	}
}
