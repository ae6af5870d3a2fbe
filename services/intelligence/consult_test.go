// File: services/intelligence/consult_test.go
package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"labport/models"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	return g.reply, g.err
}

func newTestConsult(t *testing.T, gen TextGenerator) (*DefaultConsultService, *RedisContextStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisContextStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Minute)
	return &DefaultConsultService{Generator: gen, Store: store}, store
}

func TestConsultRecordsTranscript(t *testing.T) {
	svc, _ := newTestConsult(t, &stubGenerator{reply: "Suggested tests:\n- CBC\nPlease see a doctor."})
	ctx := context.Background()

	resp, err := svc.Consult(ctx, "sess-1", models.LangEnglish, "I have a fever")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "CBC")

	msgs, err := svc.History(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "I have a fever", msgs[0].Text)
	assert.Equal(t, "ai", msgs[1].Role)
	assert.Equal(t, resp.Reply, msgs[1].Text)
}

func TestConsultFallsBackOnGeneratorError(t *testing.T) {
	svc, _ := newTestConsult(t, &stubGenerator{err: errors.New("network down")})
	ctx := context.Background()

	resp, err := svc.Consult(ctx, "sess-1", models.LangBangla, "মাথা ব্যথা")
	require.NoError(t, err)
	assert.Equal(t, fallbackReplyBN, resp.Reply)

	resp, err = svc.Consult(ctx, "sess-2", models.LangEnglish, "headache")
	require.NoError(t, err)
	assert.Equal(t, fallbackReplyEN, resp.Reply)
}

func TestConsultFallsBackOnEmptyReply(t *testing.T) {
	svc, _ := newTestConsult(t, &stubGenerator{reply: "   \n"})

	resp, err := svc.Consult(context.Background(), "sess-1", models.LangEnglish, "dizzy")
	require.NoError(t, err)
	assert.Equal(t, fallbackReplyEN, resp.Reply)
}

func TestConsultBlocksConcurrentSends(t *testing.T) {
	svc, store := newTestConsult(t, &stubGenerator{reply: "ok"})
	ctx := context.Background()

	acquired, err := store.TryAcquire(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = svc.Consult(ctx, "sess-1", models.LangEnglish, "second question")
	assert.ErrorIs(t, err, ErrConsultBusy)

	// A different session is unaffected.
	resp, err := svc.Consult(ctx, "sess-2", models.LangEnglish, "other question")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Reply)
}

func TestConsultProceedsWhenLockStoreDown(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisContextStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Minute)
	svc := &DefaultConsultService{Generator: &stubGenerator{reply: "ok"}, Store: store}
	mr.Close()

	// An unreachable lock store degrades to an unguarded consult instead
	// of an error.
	resp, err := svc.Consult(context.Background(), "sess-1", models.LangEnglish, "hello")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Reply)
}

func TestResetClearsTranscript(t *testing.T) {
	svc, _ := newTestConsult(t, &stubGenerator{reply: "ok"})
	ctx := context.Background()

	_, err := svc.Consult(ctx, "sess-1", models.LangEnglish, "hello")
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, "sess-1"))

	msgs, err := svc.History(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
