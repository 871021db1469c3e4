package application

import (
	"context"
	"strings"
	"time"

	"github.com/guhz021/microblog-api/internal/domain/apperr"
	"github.com/guhz021/microblog-api/internal/domain/entity"
	"github.com/guhz021/microblog-api/internal/domain/repository"
	"github.com/guhz021/microblog-api/pkg/helpers"
	"github.com/guhz021/microblog-api/pkg/validation"
)

// PostService orchestrates post creation and the feed reads. Creating a
// post verifies the author exists, snapshots the author's name, derives
// the hashtag set from the content and records each tag in the registry.
type PostService struct {
	Posts    repository.PostRepository
	Users    repository.UserRepository
	Hashtags repository.HashtagRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, hashtags repository.HashtagRepository) *PostService {
	return &PostService{Posts: posts, Users: users, Hashtags: hashtags}
}

func (s *PostService) Create(ctx context.Context, in entity.CreatePost) (*entity.Post, error) {
	if missing := validation.Required(in); missing != nil {
		return nil, apperr.NewValidation(missing)
	}
	autorID, err := entity.ParseID(in.AutorID)
	if err != nil {
		return nil, err
	}

	autor, err := s.Users.GetByID(ctx, autorID)
	if err != nil {
		return nil, err
	}

	// Registry upserts run before the insert, as the original flow does.
	// A failure partway leaves registered tags without a post; there is no
	// rollback (known gap, the operations are not atomic).
	tags := helpers.ExtractHashtags(in.Conteudo)
	for _, tag := range tags {
		if err := s.Hashtags.Upsert(ctx, tag); err != nil {
			return nil, err
		}
	}

	post := &entity.Post{
		Conteudo:  in.Conteudo,
		AutorID:   autor.ID,
		AutorNome: autor.Nome,
		Data:      time.Now().UTC(),
		Hashtags:  tags,
	}
	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Feed lists every post, newest first.
func (s *PostService) Feed(ctx context.Context) ([]entity.FeedPost, error) {
	return s.Posts.ListFeed(ctx, entity.FeedFilter{})
}

func (s *PostService) FeedByAutor(ctx context.Context, autorID string) ([]entity.FeedPost, error) {
	oid, err := entity.ParseID(autorID)
	if err != nil {
		return nil, err
	}
	return s.Posts.ListFeed(ctx, entity.FeedFilter{AutorID: &oid})
}

// FeedByHashtag is case-insensitive: tags are stored lowercase, so the
// filter is lowered before querying.
func (s *PostService) FeedByHashtag(ctx context.Context, tag string) ([]entity.FeedPost, error) {
	return s.Posts.ListFeed(ctx, entity.FeedFilter{Hashtag: strings.ToLower(tag)})
}

func (s *PostService) GetFeedPost(ctx context.Context, id string) (*entity.FeedPost, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.Posts.GetFeedPost(ctx, oid)
}

func (s *PostService) Update(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}

	var tags []string
	if patch.Conteudo != nil {
		tags = helpers.ExtractHashtags(*patch.Conteudo)
		for _, tag := range tags {
			if err := s.Hashtags.Upsert(ctx, tag); err != nil {
				return nil, err
			}
		}
	}
	return s.Posts.Update(ctx, oid, patch, tags)
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	oid, err := entity.ParseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.Posts.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrNotFound
	}
	return nil
}
