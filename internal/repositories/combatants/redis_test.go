package combatants

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/repositories/combatants/mocks"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client       *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.client,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) fighter() *combat.Combatant {
	c := combat.NewPlayer("hero", "Hero", combat.ClassFighter, 3, 20, combat.Attributes{Strength: 15, Agility: 12})
	c.HP = 7
	return c
}

func (s *RedisRepoTestSuite) snapshot(c *combat.Combatant) string {
	data, err := json.Marshal(&Data{Combatant: c, UpdatedAt: s.now})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestPersist() {
	ctx := context.Background()
	c := s.fighter()
	s.timeProvider.EXPECT().Now().Return(s.now)

	s.mock.ExpectSet("combatant:hero", s.snapshot(c), 0).SetVal("OK")
	s.mock.ExpectSAdd("combatants:player", "hero").SetVal(1)

	s.NoError(s.repo.Persist(ctx, c))
}

func (s *RedisRepoTestSuite) TestPersist_DependencyError() {
	ctx := context.Background()
	c := s.fighter()
	s.timeProvider.EXPECT().Now().Return(s.now)

	s.mock.ExpectSet("combatant:hero", s.snapshot(c), 0).SetErr(errors.New("redis error"))

	err := s.repo.Persist(ctx, c)
	s.Error(err)
	s.True(combaterr.IsUnavailable(err))
}

func (s *RedisRepoTestSuite) TestPersist_InputValidation() {
	ctx := context.Background()

	s.True(combaterr.IsInvalidArgument(s.repo.Persist(ctx, nil)))
	s.True(combaterr.IsInvalidArgument(s.repo.Persist(ctx, &combat.Combatant{})))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	c := s.fighter()

	s.mock.ExpectGet("combatant:hero").SetVal(s.snapshot(c))

	got, err := s.repo.Get(ctx, "hero")
	s.Require().NoError(err)
	s.Equal("hero", got.ID)
	s.Equal(7, got.HP)
	s.Equal(combat.ClassFighter, got.Class())
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("combatant:ghost").RedisNil()

	_, err := s.repo.Get(context.Background(), "ghost")
	s.True(combaterr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_DependencyError() {
	s.mock.ExpectGet("combatant:hero").SetErr(errors.New("redis error"))

	_, err := s.repo.Get(context.Background(), "hero")
	s.True(combaterr.IsUnavailable(err))
}

func (s *RedisRepoTestSuite) TestListByKind() {
	ctx := context.Background()
	a := combat.NewMonster("goblin-a", "Goblin", 1, 5, combat.Attributes{}, combat.MonsterTraits{})
	b := combat.NewMonster("goblin-b", "Goblin", 1, 5, combat.Attributes{}, combat.MonsterTraits{})

	s.mock.ExpectSMembers("combatants:monster").SetVal([]string{"goblin-b", "goblin-a"})
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectGet("combatant:goblin-a").SetVal(s.snapshot(a))
	s.mock.ExpectGet("combatant:goblin-b").SetVal(s.snapshot(b))

	list, err := s.repo.ListByKind(ctx, combat.KindMonster)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("goblin-a", list[0].ID)
	s.Equal("goblin-b", list[1].ID)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	c := s.fighter()

	s.mock.ExpectGet("combatant:hero").SetVal(s.snapshot(c))
	s.mock.ExpectDel("combatant:hero").SetVal(1)
	s.mock.ExpectSRem("combatants:player", "hero").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "hero"))
}

func TestNewRedisRepository_Panics(t *testing.T) {
	assert.Panics(t, func() { NewRedisRepository(nil) })
	assert.Panics(t, func() { NewRedisRepository(&RedisRepoConfig{}) })
}
