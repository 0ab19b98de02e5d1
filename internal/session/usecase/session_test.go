package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/session"
	"uxo-chatbot/internal/session/repository/memory"
	"uxo-chatbot/pkg/log"
)

func newTestUseCase(window int) *implUseCase {
	return New(log.NewNop(), memory.New(100, time.Hour), window)
}

func TestUnseenSessionDefaults(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(5)

	intent, err := uc.LastIntent(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, session.DefaultIntent, intent)

	q, err := uc.LastQuestion(ctx, "new")
	require.NoError(t, err)
	assert.Empty(t, q)

	h, err := uc.ChatHistory(ctx, "new")
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestUnseenSessionDefaultsProperty(t *testing.T) {
	uc := newTestUseCase(5)
	properties := gopter.NewProperties(nil)

	properties.Property("unseen keys read as defaults", prop.ForAll(
		func(id string) bool {
			if id == "" {
				return true
			}
			s, err := uc.Get(context.Background(), "p-"+id)
			return err == nil && s.LastIntent == session.DefaultIntent && s.LastQuestion == "" && len(s.Turns) == 0
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestAppendTurnAndHistory(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(2)
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	for i := 1; i <= 3; i++ {
		require.NoError(t, uc.AppendTurn(ctx, "s", model.Turn{
			Input:  fmt.Sprintf("q%d", i),
			Output: fmt.Sprintf("a%d", i),
			Intent: model.IntentDefinition,
		}))
	}

	h, err := uc.ChatHistory(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, "User: q2\nAssistant: a2\nUser: q3\nAssistant: a3\n", h)

	turns, err := uc.RecentTurns(ctx, "s")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, fixed, turns[1].CreatedAt)

	q, _ := uc.LastQuestion(ctx, "s")
	assert.Equal(t, "q3", q)
	intent, _ := uc.LastIntent(ctx, "s")
	assert.Equal(t, model.IntentDefinition, intent)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(5)

	require.NoError(t, uc.AppendTurn(ctx, "s", model.Turn{Input: "q", Output: "a", Intent: model.IntentAskHotline}))
	require.NoError(t, uc.Clear(ctx, "s"))

	intent, err := uc.LastIntent(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, session.DefaultIntent, intent)
}

func TestEmptySessionID(t *testing.T) {
	uc := newTestUseCase(5)
	assert.ErrorIs(t, uc.AppendTurn(context.Background(), "", model.Turn{}), session.ErrEmptySessionID)
	assert.ErrorIs(t, uc.Clear(context.Background(), ""), session.ErrEmptySessionID)
	_, err := uc.Get(context.Background(), "")
	assert.ErrorIs(t, err, session.ErrEmptySessionID)
}

func TestLockSerializesSameKey(t *testing.T) {
	uc := newTestUseCase(5)
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := uc.Lock("same")
			defer unlock()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	uc.mu.Lock()
	assert.Empty(t, uc.locks)
	uc.mu.Unlock()
}

func TestUnlockIsIdempotent(t *testing.T) {
	uc := newTestUseCase(5)
	unlock := uc.Lock("k")
	unlock()
	unlock()

	done := make(chan struct{})
	go func() {
		u := uc.Lock("k")
		u()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock not released")
	}
}
