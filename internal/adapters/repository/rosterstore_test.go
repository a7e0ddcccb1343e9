package repository_test

import (
	"context"
	"errors"
	"testing"

	persistence "github.com/okian/talentpulse/internal/adapters/persistence"
	repository "github.com/okian/talentpulse/internal/adapters/repository"
	derive "github.com/okian/talentpulse/internal/domain/derive"
	model "github.com/okian/talentpulse/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func strptr(s string) *string { return &s }

func draft(name string) repository.Draft {
	return repository.Draft{
		Name:  name,
		Email: name + "@x.com",
		Role:  "Engineer",
	}
}

func TestCreate(t *testing.T) {
	Convey("Given an empty store", t, func() {
		s := repository.NewRosterStore()
		ctx := context.Background()

		Convey("When creating a record with an active learner attitude", func() {
			d := draft("Ann")
			d.LearningAttitude = model.AttitudeActiveLearner
			e, err := s.Create(ctx, d)

			Convey("Then derivation ran before the record became visible", func() {
				So(err, ShouldBeNil)
				So(e.ID, ShouldNotBeEmpty)
				So(e.LearningScore, ShouldEqual, 100)
				So(e.Tags, ShouldResemble, []string{model.AttitudeActiveLearner})
				So(e.Answers, ShouldHaveLength, model.QuestionCount)
			})

			Convey("Then the record is retrievable by id", func() {
				got, err := s.Get(ctx, e.ID)
				So(err, ShouldBeNil)
				So(got.Name, ShouldEqual, "Ann")
			})
		})

		Convey("When a required field is blank after trimming", func() {
			d := draft("Ann")
			d.Email = "   "
			_, err := s.Create(ctx, d)

			Convey("Then the create is rejected and nothing was applied", func() {
				So(errors.Is(err, repository.ErrMissingField), ShouldBeTrue)
				So(s.Count(ctx), ShouldEqual, 0)
			})
		})

		Convey("When creating several records", func() {
			a, err := s.Create(ctx, draft("Ann"))
			So(err, ShouldBeNil)
			b, err := s.Create(ctx, draft("Bob"))
			So(err, ShouldBeNil)

			Convey("Then the newest record comes first", func() {
				recs := s.List(ctx)
				So(recs, ShouldHaveLength, 2)
				So(recs[0].ID, ShouldEqual, b.ID)
				So(recs[1].ID, ShouldEqual, a.ID)
			})

			Convey("Then minted ids are unique", func() {
				So(a.ID, ShouldNotEqual, b.ID)
			})
		})
	})
}

func TestUpdate(t *testing.T) {
	Convey("Given a store with one record", t, func() {
		s := repository.NewRosterStore()
		ctx := context.Background()

		d := draft("Ann")
		d.WorkCulture = "Prefers healthy culture"
		e, err := s.Create(ctx, d)
		So(err, ShouldBeNil)
		So(e.Tags, ShouldResemble, []string{"Prefers healthy culture"})

		Convey("When clearing the work culture via the patch", func() {
			got, err := s.Update(ctx, e.ID, repository.Patch{WorkCulture: strptr("")})

			Convey("Then the stale tag does not survive the update", func() {
				So(err, ShouldBeNil)
				So(got.Tags, ShouldBeEmpty)
			})
		})

		Convey("When patching a single field", func() {
			submitted := true
			got, err := s.Update(ctx, e.ID, repository.Patch{AssessmentSubmitted: &submitted})

			Convey("Then untouched fields are kept and derivation re-ran", func() {
				So(err, ShouldBeNil)
				So(got.Name, ShouldEqual, "Ann")
				So(got.WorkCulture, ShouldEqual, "Prefers healthy culture")
				So(got.Tags, ShouldResemble, []string{"Prefers healthy culture", derive.SubmittedTag})
			})
		})

		Convey("When replacing the answers", func() {
			got, err := s.Update(ctx, e.ID, repository.Patch{
				Answers: map[string]string{"q1": "loves Rust"},
			})

			Convey("Then the new map is normalized to the fixed keys", func() {
				So(err, ShouldBeNil)
				So(got.Answers["q1"], ShouldEqual, "loves Rust")
				So(got.Answers, ShouldHaveLength, model.QuestionCount)
			})
		})

		Convey("When the id is unknown", func() {
			_, err := s.Update(ctx, "nope", repository.Patch{Name: strptr("X")})

			Convey("Then it fails as a no-op", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				got, err := s.Get(ctx, e.ID)
				So(err, ShouldBeNil)
				So(got.Name, ShouldEqual, "Ann")
			})
		})
	})
}

func TestDeleteAndLookup(t *testing.T) {
	Convey("Given a store with one record", t, func() {
		s := repository.NewRosterStore()
		ctx := context.Background()
		e, err := s.Create(ctx, draft("Ann"))
		So(err, ShouldBeNil)

		Convey("When deleting it", func() {
			So(s.Delete(ctx, e.ID), ShouldBeTrue)

			Convey("Then it is gone without a tombstone", func() {
				So(s.Count(ctx), ShouldEqual, 0)
				_, err := s.Get(ctx, e.ID)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When deleting an absent id", func() {
			So(s.Delete(ctx, "ghost"), ShouldBeFalse)

			Convey("Then the collection length is unchanged", func() {
				So(s.Count(ctx), ShouldEqual, 1)
			})
		})
	})
}

func TestListIsolation(t *testing.T) {
	Convey("Given a store with one record", t, func() {
		s := repository.NewRosterStore()
		ctx := context.Background()
		d := draft("Ann")
		d.Answers = map[string]string{"q1": "original"}
		e, err := s.Create(ctx, d)
		So(err, ShouldBeNil)

		Convey("When a caller mutates the listed snapshot", func() {
			recs := s.List(ctx)
			recs[0].Answers["q1"] = "tampered"
			recs[0].Tags = append(recs[0].Tags, "injected")

			Convey("Then the store's copy is unaffected", func() {
				got, err := s.Get(ctx, e.ID)
				So(err, ShouldBeNil)
				So(got.Answers["q1"], ShouldEqual, "original")
				So(got.Tags, ShouldNotContain, "injected")
			})
		})
	})
}

func TestPersistence(t *testing.T) {
	Convey("Given a store backed by an in-memory KV", t, func() {
		kv := persistence.NewMemStore()
		ctx := context.Background()
		s := repository.NewRosterStore(
			repository.WithKV(kv),
			repository.WithSnapshotKey("employees"),
		)
		So(s.Load(ctx), ShouldBeNil)

		Convey("When records are mutated", func() {
			e, err := s.Create(ctx, draft("Ann"))
			So(err, ShouldBeNil)
			_, err = s.Update(ctx, e.ID, repository.Patch{Role: strptr("Manager")})
			So(err, ShouldBeNil)

			Convey("Then a fresh store loads the same collection", func() {
				s2 := repository.NewRosterStore(repository.WithKV(kv))
				So(s2.Load(ctx), ShouldBeNil)
				got, err := s2.Get(ctx, e.ID)
				So(err, ShouldBeNil)
				So(got.Role, ShouldEqual, "Manager")
				So(s2.Count(ctx), ShouldEqual, 1)
			})
		})

		Convey("When the persisted snapshot is malformed", func() {
			So(kv.Save(ctx, "employees", []byte("{not json")), ShouldBeNil)
			s2 := repository.NewRosterStore(repository.WithKV(kv))

			Convey("Then loading falls back to an empty collection", func() {
				So(s2.Load(ctx), ShouldBeNil)
				So(s2.Count(ctx), ShouldEqual, 0)
			})
		})

		Convey("When the snapshot carries stale derived fields", func() {
			raw := `[{"id":"1","name":"Ann","email":"a@x.com","role":"Engineer",` +
				`"work_culture":"Salary-driven","tags":["Submitted"],"learning_score":100}]`
			So(kv.Save(ctx, "employees", []byte(raw)), ShouldBeNil)
			s2 := repository.NewRosterStore(repository.WithKV(kv))
			So(s2.Load(ctx), ShouldBeNil)

			Convey("Then derivation is re-run on load", func() {
				got, err := s2.Get(ctx, "1")
				So(err, ShouldBeNil)
				So(got.Tags, ShouldResemble, []string{"Salary-driven"})
				So(got.LearningScore, ShouldEqual, 0)
				So(got.Answers, ShouldHaveLength, model.QuestionCount)
			})
		})
	})
}

func TestIDFuncOverride(t *testing.T) {
	Convey("Given a store with a deterministic id func", t, func() {
		n := 0
		s := repository.NewRosterStore(repository.WithIDFunc(func() string {
			n++
			return map[int]string{1: "id-1", 2: "id-2"}[n]
		}))
		ctx := context.Background()

		Convey("When creating records", func() {
			a, err := s.Create(ctx, draft("Ann"))
			So(err, ShouldBeNil)
			b, err := s.Create(ctx, draft("Bob"))
			So(err, ShouldBeNil)

			Convey("Then the supplied ids are used", func() {
				So(a.ID, ShouldEqual, "id-1")
				So(b.ID, ShouldEqual, "id-2")
			})
		})
	})
}
