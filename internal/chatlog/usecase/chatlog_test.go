package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uxo-chatbot/internal/chatlog"
	repo "uxo-chatbot/internal/chatlog/repository"
	"uxo-chatbot/pkg/log"
)

type mockRepo struct {
	created []repo.CreateLogOptions
	listOpt repo.ListLogsOptions
	err     error
}

func (m *mockRepo) CreateLog(ctx context.Context, opt repo.CreateLogOptions) (chatlog.Log, error) {
	if m.err != nil {
		return chatlog.Log{}, m.err
	}
	m.created = append(m.created, opt)
	return chatlog.Log{ID: uint(len(m.created)), SessionID: opt.SessionID, Entities: opt.Entities}, nil
}

func (m *mockRepo) ListLogs(ctx context.Context, opt repo.ListLogsOptions) ([]chatlog.Log, int, error) {
	m.listOpt = opt
	return []chatlog.Log{{ID: 1}}, 1, m.err
}

func TestRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("required fields", func(t *testing.T) {
		uc := New(&mockRepo{}, log.NewNop())
		for _, in := range []chatlog.RecordInput{
			{Message: "m", Response: "r"},
			{SessionID: "s", Response: "r"},
			{SessionID: "s", Message: "m", Response: "  "},
		} {
			_, err := uc.Record(ctx, in)
			assert.ErrorIs(t, err, chatlog.ErrInvalidPayload)
		}
	})

	t.Run("nil entities become empty lists", func(t *testing.T) {
		m := &mockRepo{}
		got, err := New(m, log.NewNop()).Record(ctx, chatlog.RecordInput{SessionID: "s", Message: "m", Response: "r"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), got.ID)
		assert.NotNil(t, m.created[0].Entities.Locations)
	})

	t.Run("repository failure", func(t *testing.T) {
		m := &mockRepo{err: repo.ErrFailedToInsert}
		_, err := New(m, log.NewNop()).Record(ctx, chatlog.RecordInput{SessionID: "s", Message: "m", Response: "r"})
		assert.ErrorIs(t, err, repo.ErrFailedToInsert)
	})
}

func TestListClampsPaging(t *testing.T) {
	tests := []struct {
		name      string
		in        chatlog.ListInput
		wantSkip  int
		wantLimit int
	}{
		{"defaults", chatlog.ListInput{}, 0, chatlog.DefaultLimit},
		{"negative skip", chatlog.ListInput{Skip: -3, Limit: 5}, 0, 5},
		{"limit capped", chatlog.ListInput{Skip: 10, Limit: 1000}, 10, chatlog.MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockRepo{}
			out, err := New(m, log.NewNop()).List(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, repo.ListLogsOptions{Offset: tt.wantSkip, Limit: tt.wantLimit}, m.listOpt)
			assert.Equal(t, tt.wantLimit, out.Limit)
			assert.Equal(t, 1, out.Total)
		})
	}
}
