package main_test

import (
	"encoding/json"

	"github.com/fwojciec/coursecat"
)

const sampleHTML = `<section class="course" id="CSC-226">` +
	`<h1>CSC 226 <small>Discrete Mathematics</small></h1>` +
	`<span class="units">Units: 3</span><p>Propositional logic.</p>` +
	`<table><tr><th>Sections</th></tr><tr><th>Section</th></tr>` +
	`<tr><td>001</td><td>Lecture</td><td>12345</td>` +
	`<td><span>Open</span><br>18/20</td>` +
	`<td><abbr title="Monday - meet">M</abbr><abbr title="Wednesday - meet">W</abbr><br>10:15 AM - 11:05 AM</td>` +
	`<td>1231 EB2</td><td><a href="https://example.edu/jdoe">Jane Doe</a></td>` +
	`<td>01/06/25 - 04/22/25</td><td></td>` +
	`<td><a id="reqs-12345" data-content="&lt;b&gt;Prereq:&lt;/b&gt; CSC 116">Reqs</a></td></tr>` +
	`</table></section>`

var sampleResponse = func() string {
	b, err := json.Marshal(coursecat.SearchResponse{HTML: sampleHTML, JSON: json.RawMessage(`{}`)})
	if err != nil {
		panic(err)
	}
	return string(b)
}()

func ptr[T any](v T) *T { return &v }

func sampleCourse() coursecat.Course {
	return coursecat.Course{
		Subject:     "CSC",
		Code:        226,
		Name:        "Discrete Mathematics",
		Description: "Propositional logic.",
		Credits:     3,
		Sections: []coursecat.Section{
			{
				Number:       1,
				Component:    "Lecture",
				ClassID:      12345,
				Availability: coursecat.Availability{Status: coursecat.StatusOpen, Capacity: 20, Enrolled: 18},
				Schedule: &coursecat.Schedule{
					Days:      []coursecat.Weekday{coursecat.Monday, coursecat.Wednesday},
					BeginTime: coursecat.Clock{Hour: 10, Minute: 15},
					EndTime:   coursecat.Clock{Hour: 11, Minute: 5},
				},
				Location:    "1231 EB2",
				Instructors: []coursecat.Instructor{{Name: "Jane Doe", Webpage: ptr("https://example.edu/jdoe")}},
				BeginDate:   coursecat.Date{Year: 2025, Month: 1, Day: 6},
				EndDate:     coursecat.Date{Year: 2025, Month: 4, Day: 22},
				Requisites:  ptr("<b>Prereq:</b> CSC 116"),
			},
		},
	}
}
