package draw

// generator implements the Generator interface with randomized backtracking
type generator struct {
	shuffler Shuffler
}

// New creates a new pairing generator
func New(cfg *Config) (*generator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	return &generator{
		shuffler: cfg.Shuffler,
	}, nil
}

// Generate assigns each participant a receiver such that nobody draws themselves,
// every participant is drawn exactly once and no exclusion is violated.
func (g *generator) Generate(input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := validate(input); err != nil {
		return nil, err
	}

	participants := input.Participants

	// Candidate receivers per giver, by index into participants
	candidates := make([][]int, len(participants))
	for gi, giver := range participants {
		for ri, receiver := range participants {
			if gi == ri {
				continue
			}
			if excluded(input.Exclusions, giver, receiver) {
				continue
			}
			candidates[gi] = append(candidates[gi], ri)
		}
	}

	s := &search{
		shuffler:   g.shuffler,
		candidates: candidates,
		receiverOf: make([]int, len(participants)),
		taken:      make([]bool, len(participants)),
	}

	if !s.assign(0) {
		return &GenerateOutput{Feasible: false}, nil
	}

	pairings := make(map[string]string, len(participants))
	for gi, ri := range s.receiverOf {
		pairings[participants[gi].ID] = participants[ri].ID
	}

	return &GenerateOutput{
		Feasible: true,
		Pairings: pairings,
	}, nil
}

func validate(input *GenerateInput) error {
	if len(input.Participants) < MinParticipants {
		return ErrTooFewParticipants
	}

	seen := make(map[string]struct{}, len(input.Participants))
	for _, p := range input.Participants {
		if p.ID == "" {
			return ErrEmptyParticipantID
		}
		if _, ok := seen[p.ID]; ok {
			return ErrDuplicateParticipantID
		}
		seen[p.ID] = struct{}{}
	}

	for _, ex := range input.Exclusions {
		if !ex.Direction.IsValid() {
			return ErrUnknownDirection
		}
	}

	return nil
}

// excluded reports whether any exclusion forbids giver drawing receiver.
// Names are compared exactly, so an exclusion naming an absent participant never matches.
func excluded(exclusions []Exclusion, giver, receiver Participant) bool {
	for _, ex := range exclusions {
		if ex.Forbids(giver.Name, receiver.Name) {
			return true
		}
	}
	return false
}

// search holds the partial assignment for a single Generate call
type search struct {
	shuffler   Shuffler
	candidates [][]int

	// receiverOf[giver] is the receiver index assigned so far
	receiverOf []int

	// taken[receiver] is true once an earlier giver drew them
	taken []bool
}

// assign tries every available receiver for the giver at index, in a fresh random
// order, and recurses into the next giver. It undoes its choice on failure.
func (s *search) assign(index int) bool {
	if index == len(s.candidates) {
		return true
	}

	available := make([]int, 0, len(s.candidates[index]))
	for _, ri := range s.candidates[index] {
		if !s.taken[ri] {
			available = append(available, ri)
		}
	}

	s.shuffler.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	for _, ri := range available {
		s.receiverOf[index] = ri
		s.taken[ri] = true

		if s.assign(index + 1) {
			return true
		}

		// Backtrack
		s.taken[ri] = false
	}

	return false
}
