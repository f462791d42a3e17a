package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/vastu-shakti/model"
)

// ListBlogs handler
// @Summary List blogs
// @Description Published posts without body. language=hi returns only posts with a Hindi title.
// @Tags Blogs
// @Produce json
// @Param language query string false "en or hi"
// @Param category query string false "Category"
// @Param page query int false "Page"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} model.BlogListResponse
// @Router /api/blogs [get]
func (s *RestHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := s.BlogApp.List(r.Context(), &model.BlogQuery{
		Language: languageParam(r),
		Category: strings.TrimSpace(q.Get("category")),
		Page:     queryInt(r, "page"),
		PerPage:  queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetBlog handler
// @Summary Blog by slug
// @Tags Blogs
// @Produce json
// @Param slug path string true "Slug"
// @Param language query string false "en or hi"
// @Success 200 {object} model.BlogResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/blogs/{slug} [get]
func (s *RestHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := s.BlogApp.GetBySlug(r.Context(), mux.Vars(r)["slug"], languageParam(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.BlogResponse{Blog: blog})
}

// languageParam reads "language", falling back to the short "lang" form.
func languageParam(r *http.Request) string {
	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("language")); v != "" {
		return v
	}
	return strings.TrimSpace(q.Get("lang"))
}
