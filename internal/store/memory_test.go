package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillyEverGreen/gigbridge/internal/ledger"
)

func TestMemoryStore_GetMissingReturnsNilNil(t *testing.T) {
	s := NewMemoryStore()

	record, err := s.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMemoryStore_PutThenGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := &ledger.UserRatingData{
		UserID:        "user-1",
		OverallRating: 2.5,
		Skills: []ledger.SkillRating{
			{Skill: "React", Rating: 2.5, ProjectsCompleted: 3},
		},
	}
	require.NoError(t, s.Put(ctx, "user-1", in))

	out, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "user-1", out.UserID)
	assert.Equal(t, 2.5, out.OverallRating)
	require.Len(t, out.Skills, 1)
	assert.Equal(t, "React", out.Skills[0].Skill)
}

func TestMemoryStore_GetReturnsIsolatedCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := &ledger.UserRatingData{
		UserID: "user-1",
		Skills: []ledger.SkillRating{{Skill: "React", Rating: 1.0}},
	}
	require.NoError(t, s.Put(ctx, "user-1", in))

	first, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	first.Skills[0].Rating = 99

	second, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, second.Skills[0].Rating)
}

func TestMemoryStore_PutReplacesWholeRecord(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "user-1", &ledger.UserRatingData{
		UserID: "user-1",
		Skills: []ledger.SkillRating{{Skill: "React"}, {Skill: "Vue"}},
	}))
	require.NoError(t, s.Put(ctx, "user-1", &ledger.UserRatingData{
		UserID: "user-1",
		Skills: []ledger.SkillRating{{Skill: "Go"}},
	}))

	out, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, out.Skills, 1)
	assert.Equal(t, "Go", out.Skills[0].Skill)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "user-1", &ledger.UserRatingData{UserID: "user-1"}))
	require.NoError(t, s.Delete(ctx, "user-1"))

	record, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, record)

	// Deleting again is not an error
	assert.NoError(t, s.Delete(ctx, "user-1"))
}

func TestMemoryStore_UserIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	ids, err := s.UserIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.Put(ctx, "a", &ledger.UserRatingData{UserID: "a"}))
	require.NoError(t, s.Put(ctx, "b", &ledger.UserRatingData{UserID: "b"}))

	ids, err = s.UserIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}
