package config_test

import (
	"testing"

	config "github.com/okian/talentpulse/internal/config"
	"github.com/smartystreets/goconvey/convey"
	"golang.org/x/text/language"
)

func TestNew(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		c := config.New()

		convey.Convey("Then the defaults are sensible", func() {
			convey.So(c.LogLevel, convey.ShouldEqual, "info")
			convey.So(c.DataDir, convey.ShouldEqual, "data")
			convey.So(c.RosterKey, convey.ShouldEqual, "employees")
			convey.So(c.SessionKey, convey.ShouldEqual, "auth_user")
			convey.So(c.TagSeparator, convey.ShouldEqual, ";")
		})

		convey.Convey("Then the collation language parses", func() {
			tag, err := c.Language()
			convey.So(err, convey.ShouldBeNil)
			convey.So(tag, convey.ShouldEqual, language.English)
		})
	})
}

func TestLanguage(t *testing.T) {
	convey.Convey("Given a config with a broken language tag", t, func() {
		c := config.New()
		c.CollationLang = "!!"

		convey.Convey("Then parsing fails", func() {
			_, err := c.Language()
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
