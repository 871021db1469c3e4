package router

import (
	"github.com/guhz021/microblog-api/internal/application"
	"github.com/guhz021/microblog-api/internal/container"
	"github.com/guhz021/microblog-api/internal/infrastructure/mongodb"
	handlers "github.com/guhz021/microblog-api/internal/interface/http"
	"github.com/guhz021/microblog-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the
// container singletons and registers every feature module.
// Call once during application startup.
func InitModules(r *Registry) {
	db := container.GetMongoDB()
	logger := container.GetLogger()

	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	hashtagRepo := mongodb.NewHashtagRepository(db)

	userSvc := application.NewUserService(userRepo)
	postSvc := application.NewPostService(postRepo, userRepo, hashtagRepo)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
