package participant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/secretsanta/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// repositoryTestSuite holds the behavior every backend must share
type repositoryTestSuite struct {
	suite.Suite
	repo    Repository
	testNow time.Time

	// prepareEvent creates whatever parent record the backend requires
	prepareEvent func(eventID string)
}

func (s *repositoryTestSuite) saveParticipants(eventID string, names ...string) []*models.Participant {
	s.prepareEvent(eventID)

	participants := make([]*models.Participant, 0, len(names))
	for i, name := range names {
		participants = append(participants, &models.Participant{
			ID:        string(rune('a' + i)),
			Name:      name,
			Position:  i,
			Active:    true,
			CreatedAt: s.testNow,
		})
	}

	err := s.repo.SaveParticipants(context.Background(), &SaveParticipantsInput{
		EventID:      eventID,
		Participants: participants,
	})
	s.Require().NoError(err)

	return participants
}

func (s *repositoryTestSuite) TestSaveAndGetParticipant() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")

	p, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		EventID:       "event-1",
		ParticipantID: "b",
	})
	s.Require().NoError(err)
	s.Equal("b", p.ID)
	s.Equal("event-1", p.EventID)
	s.Equal("Bob", p.Name)
	s.Equal(1, p.Position)
	s.True(p.Active)
	s.False(p.Claimed)
	s.Nil(p.ClaimedAt)
	s.Empty(p.DrawsParticipantID)
	s.Equal(s.testNow.Unix(), p.CreatedAt.Unix())
}

func (s *repositoryTestSuite) TestGetParticipantsInEventIsOrderedByPosition() {
	s.prepareEvent("event-1")

	// Saved out of order on purpose
	err := s.repo.SaveParticipants(context.Background(), &SaveParticipantsInput{
		EventID: "event-1",
		Participants: []*models.Participant{
			{ID: "z", Name: "Zed", Position: 2, Active: true, CreatedAt: s.testNow},
			{ID: "m", Name: "Mia", Position: 0, Active: true, CreatedAt: s.testNow},
			{ID: "a", Name: "Abe", Position: 1, Active: true, CreatedAt: s.testNow},
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetParticipantsInEvent(context.Background(), &GetParticipantsInEventInput{
		EventID: "event-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 3)
	s.Equal("Mia", output.Participants[0].Name)
	s.Equal("Abe", output.Participants[1].Name)
	s.Equal("Zed", output.Participants[2].Name)
}

func (s *repositoryTestSuite) TestGetParticipantsInEmptyEvent() {
	output, err := s.repo.GetParticipantsInEvent(context.Background(), &GetParticipantsInEventInput{
		EventID: "nobody-here",
	})
	s.Require().NoError(err)
	s.Empty(output.Participants)
}

func (s *repositoryTestSuite) TestParticipantsAreScopedToEvent() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")
	s.saveParticipants("event-2", "Dana", "Eli", "Fay")

	p, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		EventID:       "event-2",
		ParticipantID: "a",
	})
	s.Require().NoError(err)
	s.Equal("Dana", p.Name)

	output, err := s.repo.GetParticipantsInEvent(context.Background(), &GetParticipantsInEventInput{
		EventID: "event-1",
	})
	s.Require().NoError(err)
	s.Len(output.Participants, 3)
}

func (s *repositoryTestSuite) TestGetParticipantNotFound() {
	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		EventID:       "event-1",
		ParticipantID: "missing",
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *repositoryTestSuite) TestClaimParticipant() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")
	claimedAt := s.testNow.Add(time.Hour)

	p, err := s.repo.ClaimParticipant(context.Background(), &ClaimParticipantInput{
		EventID:       "event-1",
		ParticipantID: "a",
		ClaimedAt:     claimedAt,
	})
	s.Require().NoError(err)
	s.True(p.Claimed)
	s.Require().NotNil(p.ClaimedAt)
	s.Equal(claimedAt.Unix(), p.ClaimedAt.Unix())

	stored, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		EventID:       "event-1",
		ParticipantID: "a",
	})
	s.Require().NoError(err)
	s.True(stored.Claimed)

	_, err = s.repo.ClaimParticipant(context.Background(), &ClaimParticipantInput{
		EventID:       "event-1",
		ParticipantID: "a",
		ClaimedAt:     claimedAt,
	})
	s.ErrorIs(err, ErrAlreadyClaimed)
}

func (s *repositoryTestSuite) TestClaimMissingParticipant() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")

	_, err := s.repo.ClaimParticipant(context.Background(), &ClaimParticipantInput{
		EventID:       "event-1",
		ParticipantID: "missing",
		ClaimedAt:     s.testNow,
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *repositoryTestSuite) TestConcurrentClaimsHaveOneWinner() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")

	const callers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins, losses := 0, 0

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.ClaimParticipant(context.Background(), &ClaimParticipantInput{
				EventID:       "event-1",
				ParticipantID: "c",
				ClaimedAt:     s.testNow,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrAlreadyClaimed):
				losses++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, wins)
	s.Equal(callers-1, losses)
}

func (s *repositoryTestSuite) TestSetParticipantActive() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")

	p, err := s.repo.SetParticipantActive(context.Background(), &SetParticipantActiveInput{
		EventID:       "event-1",
		ParticipantID: "b",
		Active:        false,
	})
	s.Require().NoError(err)
	s.False(p.Active)

	stored, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		EventID:       "event-1",
		ParticipantID: "b",
	})
	s.Require().NoError(err)
	s.False(stored.Active)

	_, err = s.repo.SetParticipantActive(context.Background(), &SetParticipantActiveInput{
		EventID:       "event-1",
		ParticipantID: "missing",
		Active:        true,
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *repositoryTestSuite) TestAssignDraws() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")

	err := s.repo.AssignDraws(context.Background(), &AssignDrawsInput{
		EventID: "event-1",
		Draws:   map[string]string{"a": "b", "b": "c", "c": "a"},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetParticipantsInEvent(context.Background(), &GetParticipantsInEventInput{
		EventID: "event-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 3)
	s.Equal("b", output.Participants[0].DrawsParticipantID)
	s.Equal("c", output.Participants[1].DrawsParticipantID)
	s.Equal("a", output.Participants[2].DrawsParticipantID)
}

func (s *repositoryTestSuite) TestAssignDrawsUnknownGiver() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")

	err := s.repo.AssignDraws(context.Background(), &AssignDrawsInput{
		EventID: "event-1",
		Draws:   map[string]string{"a": "b", "ghost": "a"},
	})
	s.ErrorIs(err, ErrParticipantNotFound)

	// Nothing is written when any giver is unknown
	p, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		EventID:       "event-1",
		ParticipantID: "a",
	})
	s.Require().NoError(err)
	s.Empty(p.DrawsParticipantID)
}

func (s *repositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.SaveParticipants(context.Background(), nil))
	s.Error(s.repo.SaveParticipants(context.Background(), &SaveParticipantsInput{}))

	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{EventID: "event-1"})
	s.Error(err)

	_, err = s.repo.ClaimParticipant(context.Background(), nil)
	s.Error(err)

	s.Error(s.repo.AssignDraws(context.Background(), &AssignDrawsInput{}))
}

func (s *repositoryTestSuite) TestDeleteParticipantsInEvent() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")
	s.saveParticipants("event-2", "Dana", "Eli", "Fay")

	s.Require().NoError(s.repo.DeleteParticipantsInEvent(context.Background(), &DeleteParticipantsInEventInput{
		EventID: "event-1",
	}))

	output, err := s.repo.GetParticipantsInEvent(context.Background(), &GetParticipantsInEventInput{
		EventID: "event-1",
	})
	s.Require().NoError(err)
	s.Empty(output.Participants)

	_, err = s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		EventID:       "event-1",
		ParticipantID: "a",
	})
	s.ErrorIs(err, ErrParticipantNotFound)

	output, err = s.repo.GetParticipantsInEvent(context.Background(), &GetParticipantsInEventInput{
		EventID: "event-2",
	})
	s.Require().NoError(err)
	s.Len(output.Participants, 3)

	s.NoError(s.repo.DeleteParticipantsInEvent(context.Background(), &DeleteParticipantsInEventInput{
		EventID: "nobody-here",
	}))
	s.Error(s.repo.DeleteParticipantsInEvent(context.Background(), nil))
}

type RedisRepositoryTestSuite struct {
	repositoryTestSuite
	mr     *miniredis.Miniredis
	client *redis.Client
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.prepareEvent = func(string) {}
	s.testNow = time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveParticipantsIndexesEvent() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")

	members, err := s.mr.Members("event_participants:event-1")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"a", "b", "c"}, members)
	s.True(s.mr.Exists("participant:event-1:a"))
}

func (s *RedisRepositoryTestSuite) TestDeleteParticipantsDropsIndex() {
	s.saveParticipants("event-1", "Alice", "Bob")

	s.Require().NoError(s.repo.DeleteParticipantsInEvent(context.Background(), &DeleteParticipantsInEventInput{
		EventID: "event-1",
	}))

	s.False(s.mr.Exists("event_participants:event-1"))
	s.False(s.mr.Exists("participant:event-1:a"))
	s.False(s.mr.Exists("participant:event-1:b"))
}

func (s *RedisRepositoryTestSuite) TestGetParticipantsSkipsDanglingIndexEntries() {
	s.saveParticipants("event-1", "Alice", "Bob", "Carol")
	s.mr.Del("participant:event-1:b")

	output, err := s.repo.GetParticipantsInEvent(context.Background(), &GetParticipantsInEventInput{
		EventID: "event-1",
	})
	s.Require().NoError(err)
	s.Len(output.Participants, 2)
}
