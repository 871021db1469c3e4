package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guhz021/microblog-api/internal/domain/entity"
)

type stubUserRepo struct {
	getUser   *entity.User
	getErr    error
	createErr error
	listUsers []entity.User
	updated   *entity.User
	updateErr error
	deleteOK  bool
	deleteErr error

	created   []*entity.User
	lastPatch entity.UserPatch
	calls     []string
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	s.calls = append(s.calls, "create")
	if s.createErr != nil {
		return s.createErr
	}
	u.ID = primitive.NewObjectID()
	s.created = append(s.created, u)
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, _ primitive.ObjectID) (*entity.User, error) {
	s.calls = append(s.calls, "getById")
	return s.getUser, s.getErr
}

func (s *stubUserRepo) List(_ context.Context) ([]entity.User, error) {
	s.calls = append(s.calls, "list")
	return s.listUsers, nil
}

func (s *stubUserRepo) Update(_ context.Context, _ primitive.ObjectID, patch entity.UserPatch) (*entity.User, error) {
	s.calls = append(s.calls, "update")
	s.lastPatch = patch
	return s.updated, s.updateErr
}

func (s *stubUserRepo) Delete(_ context.Context, _ primitive.ObjectID) (bool, error) {
	s.calls = append(s.calls, "delete")
	return s.deleteOK, s.deleteErr
}

type stubPostRepo struct {
	feed       []entity.FeedPost
	feedErr    error
	feedPost   *entity.FeedPost
	getPost    *entity.Post
	getErr     error
	updated    *entity.Post
	updateErr  error
	deleteOK   bool
	deleteErr  error
	createErr  error

	created    []*entity.Post
	lastFilter entity.FeedFilter
	lastPatch  entity.PostPatch
	lastTags   []string
	calls      []string
}

func (s *stubPostRepo) Create(_ context.Context, p *entity.Post) error {
	s.calls = append(s.calls, "create")
	if s.createErr != nil {
		return s.createErr
	}
	p.ID = primitive.NewObjectID()
	s.created = append(s.created, p)
	return nil
}

func (s *stubPostRepo) GetByID(_ context.Context, _ primitive.ObjectID) (*entity.Post, error) {
	s.calls = append(s.calls, "getById")
	return s.getPost, s.getErr
}

func (s *stubPostRepo) GetFeedPost(_ context.Context, _ primitive.ObjectID) (*entity.FeedPost, error) {
	s.calls = append(s.calls, "getFeedPost")
	return s.feedPost, s.getErr
}

func (s *stubPostRepo) ListFeed(_ context.Context, filter entity.FeedFilter) ([]entity.FeedPost, error) {
	s.calls = append(s.calls, "listFeed")
	s.lastFilter = filter
	return s.feed, s.feedErr
}

func (s *stubPostRepo) Update(_ context.Context, _ primitive.ObjectID, patch entity.PostPatch, hashtags []string) (*entity.Post, error) {
	s.calls = append(s.calls, "update")
	s.lastPatch = patch
	s.lastTags = hashtags
	return s.updated, s.updateErr
}

func (s *stubPostRepo) Delete(_ context.Context, _ primitive.ObjectID) (bool, error) {
	s.calls = append(s.calls, "delete")
	return s.deleteOK, s.deleteErr
}

type stubHashtagRepo struct {
	upserts   []string
	upsertErr error
}

func (s *stubHashtagRepo) Upsert(_ context.Context, nome string) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserts = append(s.upserts, nome)
	return nil
}

func (s *stubHashtagRepo) List(_ context.Context) ([]entity.Hashtag, error) {
	tags := make([]entity.Hashtag, 0, len(s.upserts))
	for _, nome := range s.upserts {
		tags = append(tags, entity.Hashtag{Nome: nome})
	}
	return tags, nil
}

type stubCommentRepo struct {
	getComment *entity.Comment
	getErr     error
	createErr  error
	listOut    []entity.Comment
	updated    *entity.Comment
	updateErr  error
	deleteOK   bool
	deleteErr  error

	created    []*entity.Comment
	lastFilter entity.CommentFilter
	lastPatch  entity.CommentPatch
	calls      []string
}

func (s *stubCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	s.calls = append(s.calls, "create")
	if s.createErr != nil {
		return s.createErr
	}
	c.ID = primitive.NewObjectID()
	s.created = append(s.created, c)
	return nil
}

func (s *stubCommentRepo) GetByID(_ context.Context, _ primitive.ObjectID) (*entity.Comment, error) {
	s.calls = append(s.calls, "getById")
	return s.getComment, s.getErr
}

func (s *stubCommentRepo) List(_ context.Context, filter entity.CommentFilter) ([]entity.Comment, error) {
	s.calls = append(s.calls, "list")
	s.lastFilter = filter
	return s.listOut, nil
}

func (s *stubCommentRepo) Update(_ context.Context, _ primitive.ObjectID, patch entity.CommentPatch) (*entity.Comment, error) {
	s.calls = append(s.calls, "update")
	s.lastPatch = patch
	return s.updated, s.updateErr
}

func (s *stubCommentRepo) Delete(_ context.Context, _ primitive.ObjectID) (bool, error) {
	s.calls = append(s.calls, "delete")
	return s.deleteOK, s.deleteErr
}
