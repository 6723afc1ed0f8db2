package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/skillforge/recommender/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no environment overrides", t, func() {
		t.Setenv("RECOMMENDER_CONFIG", "")

		cfg, err := config.Load(context.Background())

		Convey("Then the product defaults load", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8080")
			So(cfg.DefaultSource, ShouldEqual, "db")
			So(cfg.TopNDefault, ShouldEqual, 7)
			So(cfg.MaxTopN, ShouldEqual, 100)
			So(cfg.SemiActiveMinSimilarityDefault, ShouldEqual, 0.80)
			So(cfg.LevelScale["intermediate"], ShouldEqual, 0.5)
			So(cfg.ActivityScale["semi-active"], ShouldEqual, 0.5)
			So(cfg.ComplexityMinLevel["medium"], ShouldEqual, "intermediate")
			So(cfg.ExpectedSkill["advanced"], ShouldEqual, 0.90)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("RECOMMENDER_CONFIG", "")
		t.Setenv("RECOMMENDER_ADDR", ":9090")
		t.Setenv("RECOMMENDER_DEFAULT_SOURCE", "json")
		t.Setenv("RECOMMENDER_TOP_N_DEFAULT", "5")

		cfg, err := config.Load(context.Background())

		Convey("Then they win over the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9090")
			So(cfg.DefaultSource, ShouldEqual, "json")
			So(cfg.TopNDefault, ShouldEqual, 5)
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "addr: \":7070\"\nsnapshot_path: /data/snapshot.json\nsemi_active_min_similarity_default: 0.6\n"
		So(os.WriteFile(path, []byte(body), 0o600), ShouldBeNil)
		t.Setenv("RECOMMENDER_CONFIG", path)

		Convey("When loaded", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values layer over the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.SnapshotPath, ShouldEqual, "/data/snapshot.json")
				So(cfg.SemiActiveMinSimilarityDefault, ShouldEqual, 0.6)
				So(cfg.TopNDefault, ShouldEqual, 7)
			})
		})

		Convey("When the environment overrides the file", func() {
			t.Setenv("RECOMMENDER_ADDR", ":6060")
			cfg, err := config.Load(context.Background())

			Convey("Then the environment wins", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
			})
		})
	})

	Convey("Given a config file that does not exist", t, func() {
		t.Setenv("RECOMMENDER_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := config.Load(context.Background())

		Convey("Then loading fails with the load sentinel", func() {
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given invalid overrides", t, func() {
		t.Setenv("RECOMMENDER_CONFIG", "")

		cases := []struct {
			name  string
			key   string
			value string
		}{
			{"zero top_n_default", "RECOMMENDER_TOP_N_DEFAULT", "0"},
			{"cap below default", "RECOMMENDER_MAX_TOP_N", "2"},
			{"threshold above one", "RECOMMENDER_SEMI_ACTIVE_MIN_SIMILARITY_DEFAULT", "1.2"},
			{"unknown default source", "RECOMMENDER_DEFAULT_SOURCE", "csv"},
		}
		for _, tc := range cases {
			Convey("When "+tc.name+" is set", func() {
				t.Setenv(tc.key, tc.value)

				_, err := config.Load(context.Background())

				Convey("Then loading fails validation", func() {
					So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
				})
			})
		}
	})
}
