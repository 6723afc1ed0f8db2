package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/skillforge/recommender/internal/adapters/http/api"
	"github.com/skillforge/recommender/internal/adapters/repository"
	"github.com/skillforge/recommender/internal/app"
	"github.com/skillforge/recommender/internal/domain/types"
)

// fakeService records the last Recommend call and returns canned results.
type fakeService struct {
	lastProjectID int
	lastQuery     app.Query
	result        types.Result
	err           error
}

func (f *fakeService) Recommend(_ context.Context, projectID int, q app.Query) (types.Result, error) {
	f.lastProjectID = projectID
	f.lastQuery = q
	if f.err != nil {
		return types.Result{}, f.err
	}
	return f.result, nil
}

func (f *fakeService) DefaultQuery() app.Query {
	return app.Query{TopN: 7, SemiActiveMinSimilarity: 0.80, Source: repository.SourceDB}
}

func (f *fakeService) GetStats() map[string]interface{} {
	return map[string]interface{}{"sources": []string{"db", "json"}}
}

func newTestServer(f *fakeService) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(f, f, 100).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestGetCandidates(t *testing.T) {
	Convey("Given a running API server", t, func() {
		fake := &fakeService{
			result: types.Result{
				ProjectID:               42,
				TopN:                    7,
				SemiActiveMinSimilarity: 0.80,
				Candidates: []types.Candidate{
					{StudentID: 10, Name: "Aisha", Domain: "frontend", Level: "intermediate", ActivityProfile: "active", Similarity: 0.9876},
				},
			},
		}
		srv := newTestServer(fake)
		defer srv.Close()

		Convey("When a well-formed request arrives", func() {
			resp, err := http.Get(srv.URL + "/projects/42/candidates")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the result envelope comes back as JSON", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "application/json")

				var body types.Result
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.ProjectID, ShouldEqual, 42)
				So(body.Candidates, ShouldHaveLength, 1)
				So(body.Candidates[0].Similarity, ShouldEqual, 0.9876)
				So(fake.lastProjectID, ShouldEqual, 42)
			})
		})

		Convey("When the request overrides the tuning parameters", func() {
			resp, err := http.Get(srv.URL + "/projects/42/candidates?top_n=3&semi_active_min_similarity=0.5&source=json")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the overrides reach the orchestrator", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(fake.lastQuery.TopN, ShouldEqual, 3)
				So(fake.lastQuery.SemiActiveMinSimilarity, ShouldEqual, 0.5)
				So(fake.lastQuery.Source, ShouldEqual, repository.SourceJSON)
			})
		})

		Convey("When a response carries no request id", func() {
			resp, err := http.Get(srv.URL + "/projects/42/candidates")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the middleware assigns one", func() {
				So(resp.Header.Get("X-Request-ID"), ShouldNotBeEmpty)
			})
		})
	})
}

func TestGetCandidatesValidation(t *testing.T) {
	Convey("Given a running API server", t, func() {
		fake := &fakeService{}
		srv := newTestServer(fake)
		defer srv.Close()

		badRequests := []struct {
			name string
			path string
		}{
			{"non-numeric top_n", "/projects/1/candidates?top_n=abc"},
			{"zero top_n", "/projects/1/candidates?top_n=0"},
			{"negative top_n", "/projects/1/candidates?top_n=-2"},
			{"threshold above one", "/projects/1/candidates?semi_active_min_similarity=1.5"},
			{"threshold below zero", "/projects/1/candidates?semi_active_min_similarity=-0.1"},
			{"non-numeric threshold", "/projects/1/candidates?semi_active_min_similarity=high"},
			{"unknown source", "/projects/1/candidates?source=csv"},
			{"non-positive project id", "/projects/0/candidates"},
		}
		for _, tc := range badRequests {
			Convey(fmt.Sprintf("When the request has a %s", tc.name), func() {
				resp, err := http.Get(srv.URL + tc.path)
				So(err, ShouldBeNil)
				defer resp.Body.Close()

				Convey("Then it is rejected with 400", func() {
					So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				})
			})
		}

		Convey("When top_n exceeds the configured cap", func() {
			resp, err := http.Get(srv.URL + "/projects/1/candidates?top_n=101")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is rejected with the limit code", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)

				var body struct {
					Code string `json:"code"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Code, ShouldEqual, "limit_exceeded")
			})
		})

		Convey("When the path does not match the candidates shape", func() {
			resp, err := http.Get(srv.URL + "/projects/1/members")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the method is not GET", func() {
			resp, err := http.Post(srv.URL+"/projects/1/candidates", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestGetCandidatesErrors(t *testing.T) {
	Convey("Given an orchestrator that cannot resolve the project", t, func() {
		fake := &fakeService{err: fmt.Errorf("%w: 7", repository.ErrProjectNotFound)}
		srv := newTestServer(fake)
		defer srv.Close()

		Convey("When the request arrives", func() {
			resp, err := http.Get(srv.URL + "/projects/7/candidates")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the contract envelope comes back with 404", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)

				var body struct {
					Error     string `json:"error"`
					ProjectID int    `json:"project_id"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Error, ShouldEqual, "PROJECT_NOT_FOUND")
				So(body.ProjectID, ShouldEqual, 7)
			})
		})
	})

	Convey("Given an orchestrator without the requested source", t, func() {
		fake := &fakeService{err: fmt.Errorf("%w: db", repository.ErrSourceUnavailable)}
		srv := newTestServer(fake)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/projects/7/candidates")
		So(err, ShouldBeNil)
		defer resp.Body.Close()
		So(resp.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
	})

	Convey("Given an orchestrator that fails unexpectedly", t, func() {
		fake := &fakeService{err: fmt.Errorf("connection reset")}
		srv := newTestServer(fake)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/projects/7/candidates")
		So(err, ShouldBeNil)
		defer resp.Body.Close()
		So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
	})
}

func TestHealthAndStats(t *testing.T) {
	Convey("Given a running API server", t, func() {
		fake := &fakeService{}
		srv := newTestServer(fake)
		defer srv.Close()

		Convey("When health is probed", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var body map[string]string
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body["status"], ShouldEqual, "ok")
		})

		Convey("When stats are fetched", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var body map[string]any
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body["sources"], ShouldNotBeNil)
		})

		Convey("When metrics are scraped", func() {
			resp, err := http.Get(srv.URL + "/metrics")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
