package handler

import (
	"context"
	"sort"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"novel-reader-api/internal/domain/entity"
	"novel-reader-api/internal/domain/repository"
	pkgerrors "novel-reader-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeNovelRepo struct {
	novels []*entity.Novel
	err    error
}

var _ repository.NovelRepository = (*fakeNovelRepo)(nil)

func (f *fakeNovelRepo) Create(_ context.Context, n *entity.Novel) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	if err := n.Validate(); err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(err, pkgerrors.CodeValidationFailed, "invalid novel")
	}
	n.ID = primitive.NewObjectID()
	f.novels = append(f.novels, n)
	return n.ID, nil
}

func (f *fakeNovelRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Novel, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, n := range f.novels {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNovelRepo) List(_ context.Context, limit int64) ([]*entity.Novel, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Novel, len(f.novels))
	copy(out, f.novels)
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNovelRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.novels)), nil
}

type fakeChapterRepo struct {
	chapters []*entity.Chapter
	err      error
}

var _ repository.ChapterRepository = (*fakeChapterRepo)(nil)

func (f *fakeChapterRepo) Create(_ context.Context, ch *entity.Chapter) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	if err := ch.Validate(); err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(err, pkgerrors.CodeValidationFailed, "invalid chapter")
	}
	ch.ID = primitive.NewObjectID()
	f.chapters = append(f.chapters, ch)
	return ch.ID, nil
}

func (f *fakeChapterRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, ch := range f.chapters {
		if ch.ID == id {
			return ch, nil
		}
	}
	return nil, nil
}

func (f *fakeChapterRepo) ListByNovel(_ context.Context, novelID string) ([]*entity.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Chapter, 0)
	for _, ch := range f.chapters {
		if ch.NovelID == novelID {
			out = append(out, ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

type fakeProgressRepo struct {
	records map[string]*entity.Progress
	err     error
}

var _ repository.ProgressRepository = (*fakeProgressRepo)(nil)

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*entity.Progress)}
}

func (f *fakeProgressRepo) Upsert(_ context.Context, p *entity.Progress) (*entity.Progress, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := p.Validate(); err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeValidationFailed, "invalid progress")
	}
	key := p.UserID + "/" + p.NovelID
	if existing, ok := f.records[key]; ok {
		p.ID = existing.ID
	} else {
		p.ID = primitive.NewObjectID()
	}
	saved := *p
	f.records[key] = &saved
	return &saved, nil
}

func (f *fakeProgressRepo) GetByUserAndNovel(_ context.Context, userID, novelID string) (*entity.Progress, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.records[userID+"/"+novelID]
	if !ok {
		return nil, nil
	}
	return p, nil
}
