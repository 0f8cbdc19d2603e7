package draw

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/secretsanta/internal/draw Generator,Shuffler

// Generator produces gift-exchange pairings
type Generator interface {
	// Generate assigns every participant exactly one other participant to gift.
	// An error is returned only for invalid input; an exclusion set that admits
	// no solution is reported through GenerateOutput.Feasible.
	Generate(input *GenerateInput) (*GenerateOutput, error)
}

// Shuffler permutes n elements in place through swap
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}
