package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/guhz021/microblog-api/config"
	"github.com/guhz021/microblog-api/internal/application"
	"github.com/guhz021/microblog-api/internal/domain/entity"
	"github.com/guhz021/microblog-api/internal/infrastructure/mongodb"
	"github.com/guhz021/microblog-api/pkg/helpers"
)

// Seeds a demo user, a post with hashtags and a comment through the
// real services. Useful for local smoke testing against a fresh database.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoConnTimeout)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.WithError(err).Fatal("failed to ensure mongodb indexes")
	}

	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	hashtagRepo := mongodb.NewHashtagRepository(db)

	users := application.NewUserService(userRepo)
	posts := application.NewPostService(postRepo, userRepo, hashtagRepo)
	comments := application.NewCommentService(commentRepo)

	user, err := users.Create(ctx, entity.CreateUser{
		Nome:  "Maria Silva",
		Email: "maria@example.com",
		Senha: "senha123",
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to seed user")
	}
	fmt.Printf("usuario: %s (%s)\n", user.Nome, user.ID.Hex())

	post, err := posts.Create(ctx, entity.CreatePost{
		Conteudo: "Primeiro post sobre #golang e #mongodb!",
		AutorID:  user.ID.Hex(),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to seed post")
	}
	fmt.Printf("post: %s %v\n", post.ID.Hex(), post.Hashtags)

	comment, err := comments.Create(ctx, entity.CreateComment{
		PostagemID: post.ID.Hex(),
		UsuarioID:  user.ID.Hex(),
		Texto:      "Ótimo post!",
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to seed comment")
	}
	fmt.Printf("comentario: %s\n", comment.ID.Hex())

	tags, err := hashtagRepo.List(ctx)
	if err != nil {
		logger.WithError(err).Fatal("failed to list hashtags")
	}
	for _, t := range tags {
		fmt.Printf("hashtag: %s\n", t.Nome)
	}
}
