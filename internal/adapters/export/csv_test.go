package export_test

import (
	"strings"
	"testing"

	export "github.com/okian/talentpulse/internal/adapters/export"
	model "github.com/okian/talentpulse/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCSV(t *testing.T) {
	Convey("Given an exporter and an ordered result", t, func() {
		e := export.New()
		records := []model.Employee{
			{
				Name:                "Ann",
				Email:               "ann@x.com",
				Role:                "Engineer",
				AssessmentSubmitted: true,
				SubmissionDate:      "2024-01-01",
				Tags:                []string{"AI Enthusiast", "Submitted"},
			},
			{
				Name:  "Bob",
				Email: "bob@x.com",
				Role:  "Manager",
			},
		}

		Convey("When rendering", func() {
			out, err := e.CSV(records)
			So(err, ShouldBeNil)
			lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")

			Convey("Then the header and rows come out in order", func() {
				So(lines, ShouldHaveLength, 3)
				So(lines[0], ShouldEqual, "Name,Email,Role,Submitted,Submission Date,Tags")
				So(lines[1], ShouldEqual, "Ann,ann@x.com,Engineer,Yes,2024-01-01,AI Enthusiast;Submitted")
			})

			Convey("Then an unsubmitted record renders No with an empty date", func() {
				So(lines[2], ShouldEqual, "Bob,bob@x.com,Manager,No,,")
			})
		})

		Convey("When fields contain the delimiter or quotes", func() {
			out, err := e.CSV([]model.Employee{{
				Name:  `Ann "The Hammer" Lee, Jr.`,
				Email: "ann@x.com",
				Role:  "Engineer",
			}})
			So(err, ShouldBeNil)

			Convey("Then the field is quoted with embedded quotes doubled", func() {
				So(string(out), ShouldContainSubstring, `"Ann ""The Hammer"" Lee, Jr."`)
			})
		})

		Convey("When a custom tag separator is configured", func() {
			e := export.New(export.WithTagSeparator("|"))
			out, err := e.CSV([]model.Employee{{
				Name: "Ann", Email: "a@x.com", Role: "Engineer",
				Tags: []string{"a", "b"},
			}})
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, "a|b")
		})

		Convey("When the result set is empty", func() {
			out, err := e.CSV(nil)
			So(err, ShouldBeNil)

			Convey("Then only the header is emitted", func() {
				So(strings.TrimRight(string(out), "\n"), ShouldEqual, "Name,Email,Role,Submitted,Submission Date,Tags")
			})
		})
	})
}
