// Command seed generates a demo snapshot file for the JSON repository
// source. The output matches the shape expected by the snapshot package:
//
//	{"entities": {"projects": [...], "students": [...]}}
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	json "github.com/goccy/go-json"

	"github.com/skillforge/recommender/internal/domain/model"
)

// Demo vocabulary for generated data.
var (
	domains    = []string{"frontend", "backend", "mobile", "data", "devops"}
	levels     = []model.Level{model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced}
	activities = []model.Activity{model.ActivityLow, model.ActivitySemiActive, model.ActivityActive}
	complexity = []model.Complexity{model.ComplexityLow, model.ComplexityMedium, model.ComplexityHigh}
	statuses   = []string{model.StatusOpen, model.StatusOpen, model.StatusOpen, "draft", "closed"}

	firstNames = []string{"Aigerim", "Bekzat", "Carla", "Dias", "Elena", "Farid", "Gulnara", "Henry", "Inga", "Jonas"}
	lastNames  = []string{"Akhmetova", "Bauer", "Castro", "Dautov", "Eriksen", "Fischer", "Gomez", "Huang", "Ivanova", "Juma"}
)

type entities struct {
	Projects []model.Project `json:"projects"`
	Students []model.Student `json:"students"`
}

type document struct {
	Entities entities `json:"entities"`
}

func main() {
	numStudents := flag.Int("students", 50, "number of students to generate")
	numProjects := flag.Int("projects", 10, "number of projects to generate")
	seed := flag.Int64("seed", 1, "random seed for reproducible output")
	out := flag.String("out", "ai_analysis.json", "output path")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	doc := document{
		Entities: entities{
			Projects: generateProjects(rng, *numProjects),
			Students: generateStudents(rng, *numStudents),
		},
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode snapshot:", err)
		os.Exit(1)
	}
	raw = append(raw, '\n')

	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write snapshot:", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d projects and %d students to %s\n", *numProjects, *numStudents, *out)
}

func generateProjects(rng *rand.Rand, n int) []model.Project {
	out := make([]model.Project, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.Project{
			ID:            i,
			Status:        statuses[rng.Intn(len(statuses))],
			Domain:        domains[rng.Intn(len(domains))],
			RequiredLevel: levels[rng.Intn(len(levels))],
			Complexity:    complexity[rng.Intn(len(complexity))],
		})
	}
	return out
}

func generateStudents(rng *rand.Rand, n int) []model.Student {
	out := make([]model.Student, 0, n)
	for i := 1; i <= n; i++ {
		low := float64(rng.Intn(70))
		high := low + float64(rng.Intn(int(101-low)))
		out = append(out, model.Student{
			ID:              i,
			Name:            firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			Domain:          domains[rng.Intn(len(domains))],
			Level:           levels[rng.Intn(len(levels))],
			ActivityProfile: activities[rng.Intn(len(activities))],
			ProfileSettings: model.ProfileSettings{
				AvgScoreRange: []float64{low, high},
				Weight:        float64(rng.Intn(101)) / 100,
			},
		})
	}
	return out
}
