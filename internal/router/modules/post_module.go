package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/guhz021/microblog-api/internal/interface/http"
)

// PostModule wires the post routes. The static /posts/usuario and
// /posts/hashtag segments take precedence over the :id parameter, so
// GET /posts/:id only sees plain identifiers.

type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.POST("/posts", m.Handler.Create)
	rg.GET("/posts", m.Handler.List) // also serves GET /posts?id=
	rg.GET("/posts/usuario/:id", m.Handler.ListByAutor)
	rg.GET("/posts/hashtag/:tag", m.Handler.ListByHashtag)
	rg.GET("/posts/:id", m.Handler.Get)
	rg.DELETE("/posts/:id", m.Handler.Delete)
}
