package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uxo-chatbot/internal/document"
	"uxo-chatbot/internal/document/repository"
	"uxo-chatbot/pkg/log"
)

type fakeRepo struct {
	ensured   int
	batches   [][]document.Chunk
	upsertErr error
	searchOpt repository.SearchOptions
	searchErr error
	passages  []document.Passage
}

func (f *fakeRepo) EnsureCollection(ctx context.Context) error {
	f.ensured++
	return nil
}

func (f *fakeRepo) Upsert(ctx context.Context, chunks []document.Chunk) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.batches = append(f.batches, chunks)
	return nil
}

func (f *fakeRepo) Search(ctx context.Context, opt repository.SearchOptions) ([]document.Passage, error) {
	f.searchOpt = opt
	return f.passages, f.searchErr
}

func TestCleanText(t *testing.T) {
	raw := "<html><body><h1>Bom mìn</h1>\n" +
		"<p>Vật   nổ &amp; bom&nbsp;bi – nguy hiểm</p>\n\n\n\n" +
		"<script>javascript:alert(1)</script>\n" +
		"Đoạn hai.\n" +
		"Follow us on Facebook\n" +
		"© Copyright 2024 UXO\n" +
		"Privacy Policy | Sitemap</body></html>"

	got := cleanText(raw)
	assert.Equal(t, "Bom mìn\nVật nổ & bom bi - nguy hiểm\n\nalert(1)\nĐoạn hai.", got)
}

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Hướng dẫn an toàn khi phát hiện vật lạ", document.TypeSafetyGuidelines},
		{"Liên hệ đường dây nóng", document.TypeContactInfo},
		{"Call the hotline and report ordnance", document.TypeContactInfo},
		{"Bom bi còn sót lại sau chiến tranh", document.TypeUXOInfo},
		{"Lịch sử tỉnh Quảng Trị", document.TypeGeneral},
		// whole words only
		{"Bombay", document.TypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyDocument(tt.text))
		})
	}
}

func TestSplitter(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		s := splitter{size: 100, overlap: 20}
		assert.Equal(t, []string{"Bom mìn là gì?"}, s.Split("  Bom mìn là gì?  "))
	})

	t.Run("paragraphs are preferred", func(t *testing.T) {
		s := splitter{size: 20, overlap: 0}
		got := s.Split("Đoạn một ngắn.\n\nĐoạn hai ngắn.")
		assert.Equal(t, []string{"Đoạn một ngắn.", "Đoạn hai ngắn."}, got)
	})

	t.Run("word chunks overlap", func(t *testing.T) {
		words := make([]string, 30)
		for i := range words {
			words[i] = "w" + string(rune('a'+i%26)) + string(rune('a'+i/26))
		}
		s := splitter{size: 20, overlap: 8}
		chunks := s.Split(strings.Join(words, " "))
		require.Greater(t, len(chunks), 1)
		for i := 1; i < len(chunks); i++ {
			prev := strings.Fields(chunks[i-1])
			assert.Contains(t, chunks[i], prev[len(prev)-1], "chunk %d should repeat the tail of chunk %d", i, i-1)
		}
	})

	t.Run("long word is cut by runes", func(t *testing.T) {
		s := splitter{size: 4, overlap: 0}
		assert.Equal(t, []string{"đđđđ", "đđ"}, s.Split("đđđđđđ"))
	})
}

func TestSplitterProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	s := splitter{size: 40, overlap: 10}

	words := gen.SliceOf(gen.OneConstOf("bom", "mìn", "an toàn.", "\n\n", "Quảng Trị", "vật nổ", "khôngcókhoảngtrắngdàihơnbốnmươikýtựđâyđâyđây"))

	properties.Property("chunks are non-empty and within size", prop.ForAll(
		func(ws []string) bool {
			for _, c := range s.Split(strings.Join(ws, " ")) {
				if c == "" || utf8.RuneCountInString(c) > s.size {
					return false
				}
			}
			return true
		},
		words,
	))

	properties.Property("every word survives chunking", prop.ForAll(
		func(ws []string) bool {
			joined := strings.Join(s.Split(strings.Join(ws, " ")), " ")
			for _, w := range strings.Fields(strings.Join(ws, " ")) {
				if utf8.RuneCountInString(w) < s.size && !strings.Contains(joined, w) {
					return false
				}
			}
			return true
		},
		words,
	))

	properties.TestingRun(t)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestIngest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "Bom bi là loại bom chùm.\n\nKhông chạm vào vật lạ.")
	writeFile(t, filepath.Join(dir, "sub", "b.md"), "Liên hệ hotline để báo vật nổ.")
	writeFile(t, filepath.Join(dir, "sub", "empty.txt"), "<p></p>")
	writeFile(t, filepath.Join(dir, "c.pdf"), "ignored")

	repo := &fakeRepo{}
	uc := New(log.NewNop(), repo, Options{ChunkSize: 30, ChunkOverlap: 5, BatchSize: 2})

	res, err := uc.Ingest(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.ensured)
	assert.Equal(t, 2, res.Files)
	assert.Equal(t, 3, res.Chunks)
	assert.Equal(t, []string{filepath.Join(dir, "sub", "empty.txt")}, res.Skipped)

	var all []document.Chunk
	for _, b := range repo.batches {
		assert.LessOrEqual(t, len(b), 2)
		all = append(all, b...)
	}
	require.Len(t, all, 3)
	assert.Equal(t, document.Chunk{Source: "a.txt", DocType: document.TypeUXOInfo, Index: 1, Content: "Không chạm vào vật lạ."}, all[1])
	assert.Equal(t, "sub/b.md", all[2].Source)
	assert.Equal(t, document.TypeContactInfo, all[2].DocType)
}

func TestIngestErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty dir argument", func(t *testing.T) {
		_, err := New(log.NewNop(), &fakeRepo{}, Options{}).Ingest(ctx, " ")
		assert.ErrorIs(t, err, document.ErrEmptyDirectory)
	})

	t.Run("no documents", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "x.pdf"), "pdf")
		_, err := New(log.NewNop(), &fakeRepo{}, Options{}).Ingest(ctx, dir)
		assert.ErrorIs(t, err, document.ErrNoDocuments)
	})

	t.Run("upsert failure", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.txt"), "Bom mìn")
		boom := errors.New("qdrant down")
		_, err := New(log.NewNop(), &fakeRepo{upsertErr: boom}, Options{}).Ingest(ctx, dir)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRetrieve(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{passages: []document.Passage{{Content: "Bom bi", Score: 0.8}}}
	uc := New(log.NewNop(), repo, Options{TopK: 3})

	_, err := uc.Retrieve(ctx, "  ", 0)
	assert.ErrorIs(t, err, document.ErrEmptyQuery)

	got, err := uc.Retrieve(ctx, "bom bi là gì", 0)
	require.NoError(t, err)
	assert.Equal(t, repo.passages, got)
	assert.Equal(t, 3, repo.searchOpt.Limit)

	_, err = uc.Retrieve(ctx, "bom bi", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.searchOpt.Limit)

	repo.searchErr = errors.New("timeout")
	_, err = uc.Retrieve(ctx, "bom bi", 1)
	assert.ErrorIs(t, err, repo.searchErr)
}

func TestNewNormalizesOptions(t *testing.T) {
	uc := New(log.NewNop(), &fakeRepo{}, Options{ChunkSize: 100, ChunkOverlap: 100}).(*implUseCase)
	assert.Equal(t, 20, uc.splitter.overlap)
	assert.Equal(t, document.DefaultBatchSize, uc.batch)
	assert.Equal(t, document.DefaultTopK, uc.topK)
}
