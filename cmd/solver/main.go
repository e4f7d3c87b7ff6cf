package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"cvrp-solver-service/internal/adapters/matrix"
	"cvrp-solver-service/internal/solver"
	"cvrp-solver-service/internal/tsplib"

	"github.com/joho/godotenv"
)

// One-shot solver: read a TSPLIB CVRP file, build a random population,
// repair and cost every individual and report the best one. Individual
// indices are printed 1-based.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	file := flag.String("file", "", "path to a TSPLIB CVRP instance file")
	vehicles := flag.Int("vehicles", 5, "number of vehicles")
	population := flag.Int("population", solver.DefaultPopulationSize, "population size")
	seed := flag.Int64("seed", 0, "random seed (0 = seed from the clock)")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	inst, err := tsplib.ParseFile(*file)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded instance name=%q dimension=%d capacity=%d depot=%d",
		inst.Name, inst.Dimension, inst.Capacity, inst.Depot)

	dist, err := matrix.NewEuclidean(inst)
	if err != nil {
		log.Fatal(err)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	res, err := solver.Solve(inst, dist, solver.Params{
		Vehicles:       *vehicles,
		PopulationSize: *population,
	}, rng)
	if err != nil {
		log.Fatal(err)
	}

	for i, ind := range res.Individuals {
		fmt.Printf("Individual %d: %s\n", i+1, ind.Chromosome)
	}
	for i, ind := range res.Individuals {
		marker := ""
		if !ind.Feasible {
			marker = " (infeasible)"
		}
		fmt.Printf("Individual %d cost: %.2f%s\n", i+1, ind.Cost, marker)
	}
	fmt.Printf("Best individual is %d with cost = %.2f\n", res.BestIndex+1, res.BestCost)
}
