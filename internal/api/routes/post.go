package routes

import (
	"github.com/go-chi/chi/v5"

	"postboard/internal/api/handlers/post"
	"postboard/internal/api/middleware"
	"postboard/internal/core/posts"
)

// RegisterPostRoutes registers the post endpoints under /api/v1.
// Listings and single-post reads are public; everything that mutates,
// and the requester's own feed, requires authentication.
func RegisterPostRoutes(r chi.Router, service posts.Service, auth *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(service)
	listByTagsHandler := post.NewListByTagsHandler(service)
	myPostsHandler := post.NewMyPostsHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	likeHandler := post.NewLikeHandler(service)

	r.Route("/api/v1/posts", func(r chi.Router) {
		r.With(auth.OptionalAuth).Get("/", listHandler.HandleList)
		r.With(auth.OptionalAuth).Post("/by-tag", listByTagsHandler.HandleListByTags)
		r.With(auth.RequireAuth).Get("/my-posts", myPostsHandler.HandleMyPosts)
		r.With(auth.RequireAuth).Post("/", createHandler.HandleCreate)

		r.Route("/{postID}", func(r chi.Router) {
			r.With(auth.OptionalAuth).Get("/", getHandler.HandleGet)
			r.With(auth.RequireAuth).Patch("/", updateHandler.HandleUpdate)
			r.With(auth.RequireAuth).Delete("/", deleteHandler.HandleDelete)
			r.With(auth.RequireAuth).Put("/like", likeHandler.HandleLike)
			r.With(auth.RequireAuth).Put("/unlike", likeHandler.HandleUnlike)
		})
	})
}
