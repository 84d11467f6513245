package session

import (
	"context"
	"testing"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *Session {
	name := "Sarah Bennett"
	return &Session{
		Filename:   "cv.pdf",
		FileType:   "pdf",
		TextLength: 1200,
		Record: types.ResumeRecord{
			Name:           &name,
			Skills:         []string{"Go", "Rust"},
			WorkExperience: []string{"Engineer at X"},
			Education:      []string{},
			Languages:      []string{"English"},
			RawEntities: types.RawExtraction{
				"Skill": types.ListValue(types.StringValue("Go"), types.StringValue("Rust")),
			},
		},
	}
}

// runStoreContract exercises the behaviour every Store must share.
func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("put assigns a uuid", func(t *testing.T) {
		s := sampleSession()
		id, err := store.Put(ctx, s)
		require.NoError(t, err)

		_, err = uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, s.ID)
		assert.False(t, s.CreatedAt.IsZero())
	})

	t.Run("get returns the stored record", func(t *testing.T) {
		s := sampleSession()
		id, err := store.Put(ctx, s)
		require.NoError(t, err)

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, s.Record, got.Record)
		assert.Equal(t, "cv.pdf", got.Filename)
		assert.Equal(t, 1200, got.TextLength)
	})

	t.Run("delete removes the session", func(t *testing.T) {
		id, err := store.Put(ctx, sampleSession())
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, id))
		_, err = store.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, id), ErrNotFound)
	})

	t.Run("unknown ids", func(t *testing.T) {
		for _, id := range []string{uuid.NewString(), "", "not-a-uuid", "*"} {
			_, err := store.Get(ctx, id)
			assert.ErrorIs(t, err, ErrNotFound, id)
		}
	})
}
