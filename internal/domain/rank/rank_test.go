package rank_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/skillforge/recommender/internal/domain/rank"
	"github.com/skillforge/recommender/internal/domain/types"
)

func TestOrder(t *testing.T) {
	Convey("Given scored candidates", t, func() {
		candidates := []types.Candidate{
			{StudentID: 1, ActivityProfile: "semi-active", Similarity: 0.91},
			{StudentID: 2, ActivityProfile: "active", Similarity: 0.95},
			{StudentID: 3, ActivityProfile: "semi-active", Similarity: 0.95},
			{StudentID: 4, ActivityProfile: "active", Similarity: 0.91},
		}

		Convey("When ordered", func() {
			rank.Order(candidates)

			Convey("Then similarity descends and active wins exact ties", func() {
				ids := []int{candidates[0].StudentID, candidates[1].StudentID, candidates[2].StudentID, candidates[3].StudentID}
				So(ids, ShouldResemble, []int{2, 3, 4, 1})
			})
		})
	})

	Convey("Given candidates tied on similarity and activity", t, func() {
		candidates := []types.Candidate{
			{StudentID: 10, ActivityProfile: "active", Similarity: 0.9},
			{StudentID: 11, ActivityProfile: "active", Similarity: 0.9},
			{StudentID: 12, ActivityProfile: "active", Similarity: 0.9},
		}

		Convey("When ordered", func() {
			rank.Order(candidates)

			Convey("Then the input order is preserved (stable sort)", func() {
				So(candidates[0].StudentID, ShouldEqual, 10)
				So(candidates[1].StudentID, ShouldEqual, 11)
				So(candidates[2].StudentID, ShouldEqual, 12)
			})
		})
	})
}

func TestTruncate(t *testing.T) {
	Convey("Given a ranked list of three candidates", t, func() {
		candidates := []types.Candidate{{StudentID: 1}, {StudentID: 2}, {StudentID: 3}}

		Convey("Then truncation caps the list", func() {
			So(rank.Truncate(candidates, 2), ShouldHaveLength, 2)
		})

		Convey("Then a generous cap keeps everything", func() {
			So(rank.Truncate(candidates, 7), ShouldHaveLength, 3)
		})

		Convey("Then a negative cap yields nothing", func() {
			So(rank.Truncate(candidates, -1), ShouldBeEmpty)
		})
	})
}
