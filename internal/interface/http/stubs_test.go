package handlers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guhz021/microblog-api/internal/application"
	"github.com/guhz021/microblog-api/internal/domain/entity"
)

type stubUserRepo struct {
	getUser   *entity.User
	getErr    error
	createErr error
	listUsers []entity.User
	deleteOK  bool
	deleteErr error

	created []*entity.User
	calls   []string
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

func (s *stubUserRepo) Update(_ context.Context, _ primitive.ObjectID, _ entity.UserPatch) (*entity.User, error) {
	s.calls = append(s.calls, "update")
	return nil, nil
}

func (s *stubUserRepo) Delete(_ context.Context, _ primitive.ObjectID) (bool, error) {
	s.calls = append(s.calls, "delete")
	return s.deleteOK, s.deleteErr
}

type stubPostRepo struct {
	feed      []entity.FeedPost
	feedErr   error
	feedPost  *entity.FeedPost
	getErr    error
	deleteOK  bool
	deleteErr error

	created    []*entity.Post
	lastFilter entity.FeedFilter
	calls      []string
}

func (s *stubPostRepo) Create(_ context.Context, p *entity.Post) error {
	s.calls = append(s.calls, "create")
	p.ID = primitive.NewObjectID()
	s.created = append(s.created, p)
	return nil
}

func (s *stubPostRepo) GetByID(_ context.Context, _ primitive.ObjectID) (*entity.Post, error) {
	s.calls = append(s.calls, "getById")
	return nil, s.getErr
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

func (s *stubPostRepo) Update(_ context.Context, _ primitive.ObjectID, _ entity.PostPatch, _ []string) (*entity.Post, error) {
	s.calls = append(s.calls, "update")
	return nil, nil
}

func (s *stubPostRepo) Delete(_ context.Context, _ primitive.ObjectID) (bool, error) {
	s.calls = append(s.calls, "delete")
	return s.deleteOK, s.deleteErr
}

type stubHashtagRepo struct {
	upserts []string
}

func (s *stubHashtagRepo) Upsert(_ context.Context, nome string) error {
	s.upserts = append(s.upserts, nome)
	return nil
}

func (s *stubHashtagRepo) List(_ context.Context) ([]entity.Hashtag, error) {
	return nil, nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestRouter mounts the handlers on the same routes the server
// registers, over stub repositories.
func newTestRouter() (*gin.Engine, *stubUserRepo, *stubPostRepo, *stubHashtagRepo) {
	gin.SetMode(gin.TestMode)

	users := &stubUserRepo{}
	posts := &stubPostRepo{}
	hashtags := &stubHashtagRepo{}
	logger := testLogger()

	uh := NewUserHandler(application.NewUserService(users), logger)
	ph := NewPostHandler(application.NewPostService(posts, users, hashtags), logger)

	engine := gin.New()
	engine.POST("/usuarios", uh.Create)
	engine.GET("/usuarios", uh.List)
	engine.DELETE("/usuarios/:id", uh.Delete)
	engine.POST("/posts", ph.Create)
	engine.GET("/posts", ph.List)
	engine.GET("/posts/usuario/:id", ph.ListByAutor)
	engine.GET("/posts/hashtag/:tag", ph.ListByHashtag)
	engine.GET("/posts/:id", ph.Get)
	engine.DELETE("/posts/:id", ph.Delete)
	return engine, users, posts, hashtags
}
