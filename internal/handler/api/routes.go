// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

// Route path constants, relative to the /api mount point.
const (
	RoutePosts       = "/posts"
	RoutePages       = "/pages"
	RouteCaseStudies = "/case-studies"
	RouteCategories  = "/categories"
	RouteTags        = "/tags"
	RouteSettings    = "/settings"
	RouteContact     = "/contact"
	RouteContacts    = "/contacts"

	RouteParamID   = "/{id}"
	RouteParamSlug = "/{slug}"
)

// Role allow-lists for admin routes.
var (
	// writerRoles may create and edit content.
	writerRoles = []string{model.RoleAdministrator, model.RoleEditor, model.RoleAuthor}
	// managerRoles may delete taxonomy, change settings and handle leads.
	managerRoles = []string{model.RoleAdministrator, model.RoleEditor}
)

// Limiters holds the per-client rate limiters. A nil limiter is skipped.
type Limiters struct {
	API     *middleware.RateLimiter
	Login   *middleware.RateLimiter
	Contact *middleware.RateLimiter
}

func limit(rl *middleware.RateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Middleware()
}

// Routes returns the API router, meant to be mounted at /api.
func (h *Handler) Routes(v *auth.Verifier, lim Limiters) chi.Router {
	r := chi.NewRouter()
	r.Use(limit(lim.API))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteAPIError(w, http.StatusNotFound, "not_found", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed", nil)
	})

	// Public content
	r.Get(RoutePosts, h.ListPosts)
	r.Get(RoutePosts+RouteParamSlug, h.GetPost)
	r.Get(RoutePages, h.ListPages)
	r.Get(RoutePages+RouteParamSlug, h.GetPage)
	r.Get(RouteCaseStudies, h.ListCaseStudies)
	r.Get(RouteCaseStudies+RouteParamSlug, h.GetCaseStudy)
	r.Get(RouteCategories, h.ListCategories)
	r.Get(RouteTags, h.ListTags)
	r.Get(RouteSettings, h.GetSettings)
	r.With(limit(lim.Contact)).Post(RouteContact, h.SubmitContact)

	// Authentication
	r.Route("/auth", func(r chi.Router) {
		r.With(limit(lim.Login)).Post("/login", h.Login)
		r.Post("/verify", h.Verify)
	})

	// Admin (bearer token)
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BearerAuth(v))

		r.Get("/me", h.Me)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(writerRoles...))

			r.Get(RoutePosts, h.ListAdminPosts)
			r.Post(RoutePosts, h.CreatePost)
			r.Get(RoutePosts+RouteParamID, h.GetAdminPost)
			r.Put(RoutePosts+RouteParamID, h.UpdatePost)
			r.Delete(RoutePosts+RouteParamID, h.DeletePost)

			r.Post(RoutePages, h.CreatePage)
			r.Get(RoutePages+RouteParamID, h.GetAdminPage)
			r.Put(RoutePages+RouteParamID, h.UpdatePage)
			r.Delete(RoutePages+RouteParamID, h.DeletePage)

			r.Post(RouteCaseStudies, h.CreateCaseStudy)
			r.Get(RouteCaseStudies+RouteParamID, h.GetAdminCaseStudy)
			r.Put(RouteCaseStudies+RouteParamID, h.UpdateCaseStudy)
			r.Delete(RouteCaseStudies+RouteParamID, h.DeleteCaseStudy)

			r.Post(RouteCategories, h.CreateCategory)
			r.Put(RouteCategories+RouteParamID, h.UpdateCategory)
			r.Post(RouteTags, h.CreateTag)
			r.Put(RouteTags+RouteParamID, h.UpdateTag)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(managerRoles...))

			r.Delete(RouteCategories+RouteParamID, h.DeleteCategory)
			r.Delete(RouteTags+RouteParamID, h.DeleteTag)

			r.Put(RouteSettings, h.UpdateSettings)

			r.Get(RouteContacts, h.ListContacts)
			r.Put(RouteContacts+RouteParamID+"/status", h.UpdateContactStatus)
		})
	})

	return r
}
