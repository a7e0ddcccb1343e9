package identity_test

import (
	"context"
	"errors"
	"testing"

	persistence "github.com/okian/talentpulse/internal/adapters/persistence"
	identity "github.com/okian/talentpulse/internal/identity"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSession(t *testing.T) {
	Convey("Given a session on an in-memory KV", t, func() {
		kv := persistence.NewMemStore()
		s := identity.NewSession(kv)
		ctx := context.Background()

		Convey("When nobody has logged in", func() {
			_, err := s.Current(ctx)

			Convey("Then there is no viewer", func() {
				So(errors.Is(err, identity.ErrNoViewer), ShouldBeTrue)
			})
		})

		Convey("When an admin logs in", func() {
			v := identity.Viewer{FirstName: "Priya", Email: "priya@x.com", Role: identity.RoleAdmin}
			So(s.Login(ctx, v), ShouldBeNil)

			Convey("Then the viewer is current and may mutate", func() {
				got, err := s.Current(ctx)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, v)
				So(got.Role.CanMutate(), ShouldBeTrue)
			})

			Convey("And logging out clears the session", func() {
				So(s.Logout(ctx), ShouldBeNil)
				_, err := s.Current(ctx)
				So(errors.Is(err, identity.ErrNoViewer), ShouldBeTrue)
			})
		})

		Convey("When a standard viewer logs in", func() {
			v := identity.Viewer{FirstName: "Sam", Email: "sam@x.com", Role: identity.RoleUser}
			So(s.Login(ctx, v), ShouldBeNil)

			got, err := s.Current(ctx)
			So(err, ShouldBeNil)
			So(got.Role.CanMutate(), ShouldBeFalse)
		})

		Convey("When the viewer is invalid", func() {
			So(errors.Is(
				s.Login(ctx, identity.Viewer{Role: identity.RoleAdmin}),
				identity.ErrInvalidViewer,
			), ShouldBeTrue)
			So(errors.Is(
				s.Login(ctx, identity.Viewer{Email: "x@x.com", Role: "root"}),
				identity.ErrInvalidViewer,
			), ShouldBeTrue)
		})

		Convey("When the stored payload is garbage", func() {
			So(kv.Save(ctx, "auth_user", []byte("{broken")), ShouldBeNil)
			_, err := s.Current(ctx)

			Convey("Then it reads as no viewer rather than failing", func() {
				So(errors.Is(err, identity.ErrNoViewer), ShouldBeTrue)
			})
		})

		Convey("When a custom session key is configured", func() {
			s := identity.NewSession(kv, identity.WithKey("viewer"))
			v := identity.Viewer{FirstName: "Kim", Email: "kim@x.com", Role: identity.RoleUser}
			So(s.Login(ctx, v), ShouldBeNil)

			raw, err := kv.Load(ctx, "viewer", nil)
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, "kim@x.com")
		})
	})
}
