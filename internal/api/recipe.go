package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
	"github.com/pageza/recipe-catalog/internal/form"
	"github.com/pageza/recipe-catalog/internal/middleware"
	"github.com/pageza/recipe-catalog/internal/model"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/view"
)

// RecipeHandler serves the catalog pages.
type RecipeHandler struct {
	recipes         service.IRecipeService
	defaultCategory string
	groupByCategory bool
}

// HandlerOptions tunes how pages are rendered.
type HandlerOptions struct {
	DefaultCategory string
	GroupByCategory bool
	// Ping backs the health check; nil always reports healthy.
	Ping func(ctx context.Context) error
}

// NewRecipeHandler creates a RecipeHandler over recipes.
func NewRecipeHandler(recipes service.IRecipeService, opts HandlerOptions) *RecipeHandler {
	return &RecipeHandler{
		recipes:         recipes,
		defaultCategory: opts.DefaultCategory,
		groupByCategory: opts.GroupByCategory,
	}
}

// RegisterRoutes mounts the catalog pages on router.
func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.ListRecipes)

	recipes := router.Group("/recipes")
	{
		recipes.GET("/new", h.NewRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/edit", h.EditRecipe)
		recipes.POST("/:id", h.UpdateRecipe)
		recipes.GET("/:id/delete", h.ConfirmDeleteRecipe)
		recipes.POST("/:id/delete", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := model.Filter{
		Search:     c.Query("q"),
		Difficulty: model.AllDifficulties,
		Category:   c.Query("category"),
	}
	if d, ok := model.ParseDifficulty(c.Query("difficulty")); ok {
		filter.Difficulty = string(d)
	}

	ctx := c.Request.Context()
	categories := h.recipes.Categories(ctx)
	// Category matching ignores case; show the stored spelling as selected.
	for _, name := range categories {
		if strings.EqualFold(strings.TrimSpace(filter.Category), name) {
			filter.Category = name
			break
		}
	}

	h.render(c, http.StatusOK, func(w io.Writer) error {
		return view.RenderList(w, view.ListPage{
			Chrome:          h.chrome(),
			Recipes:         h.recipes.List(ctx, filter),
			Filter:          filter,
			Categories:      categories,
			GroupByCategory: h.groupByCategory,
		})
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")
	recipe, ok := h.recipes.Find(c.Request.Context(), id)
	if !ok {
		h.renderError(c, apperrors.NotFound(id))
		return
	}

	h.render(c, http.StatusOK, func(w io.Writer) error {
		return view.RenderDetail(w, view.DetailPage{Chrome: h.chrome(), Recipe: *recipe})
	})
}

func (h *RecipeHandler) NewRecipe(c *gin.Context) {
	h.renderForm(c, http.StatusOK, view.FormPage{})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var in form.Input
	if err := c.ShouldBind(&in); err != nil {
		c.String(http.StatusBadRequest, "invalid form submission")
		return
	}

	res := form.Evaluate(in)
	if res.State != form.StateValid {
		h.renderForm(c, http.StatusUnprocessableEntity, view.FormPage{
			Input:   in,
			Field:   res.Field,
			Message: res.Message,
		})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), res.Draft)
	if err != nil {
		h.renderError(c, err)
		return
	}

	log.Info().Str("request_id", c.GetString(middleware.RequestIDKey)).Str("id", recipe.ID).Msg("Recipe created")
	c.Redirect(http.StatusSeeOther, "/recipes/"+recipe.ID)
}

func (h *RecipeHandler) EditRecipe(c *gin.Context) {
	id := c.Param("id")
	recipe, ok := h.recipes.Find(c.Request.Context(), id)
	if !ok {
		h.renderError(c, apperrors.NotFound(id))
		return
	}

	h.renderForm(c, http.StatusOK, view.FormPage{
		Editing: true,
		ID:      id,
		Input:   form.FromRecipe(*recipe),
	})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")

	var in form.Input
	if err := c.ShouldBind(&in); err != nil {
		c.String(http.StatusBadRequest, "invalid form submission")
		return
	}

	res := form.Evaluate(in)
	if res.State != form.StateValid {
		h.renderForm(c, http.StatusUnprocessableEntity, view.FormPage{
			Editing: true,
			ID:      id,
			Input:   in,
			Field:   res.Field,
			Message: res.Message,
		})
		return
	}

	// The form always submits every field; an emptied category falls back
	// to the default instead of keeping the old value.
	if res.Draft.Category == nil {
		res.Draft.Category = model.Ref("")
	}

	if _, err := h.recipes.Update(c.Request.Context(), id, res.Draft); err != nil {
		h.renderError(c, err)
		return
	}

	log.Info().Str("request_id", c.GetString(middleware.RequestIDKey)).Str("id", id).Msg("Recipe updated")
	c.Redirect(http.StatusSeeOther, "/recipes/"+id)
}

func (h *RecipeHandler) ConfirmDeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	recipe, ok := h.recipes.Find(c.Request.Context(), id)
	if !ok {
		h.renderError(c, apperrors.NotFound(id))
		return
	}

	h.render(c, http.StatusOK, func(w io.Writer) error {
		return view.RenderConfirmDelete(w, view.ConfirmDeletePage{Chrome: h.chrome(), Recipe: *recipe})
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			h.renderError(c, err)
			return
		}
		// Deleting something already gone is a no-op.
		log.Warn().Str("request_id", c.GetString(middleware.RequestIDKey)).Str("id", id).Msg("Delete of missing recipe ignored")
	} else {
		log.Info().Str("request_id", c.GetString(middleware.RequestIDKey)).Str("id", id).Msg("Recipe deleted")
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *RecipeHandler) chrome() view.Chrome {
	return view.Chrome{Degraded: h.recipes.Degraded()}
}

func (h *RecipeHandler) renderForm(c *gin.Context, status int, page view.FormPage) {
	page.Chrome = h.chrome()
	page.DefaultCategory = h.defaultCategory
	h.render(c, status, func(w io.Writer) error {
		return view.RenderForm(w, page)
	})
}

func (h *RecipeHandler) renderError(c *gin.Context, err error) {
	_ = c.Error(err)

	status, page := http.StatusInternalServerError, view.ErrorPage{
		Title:   "Something went wrong",
		Message: "The request could not be completed.",
	}
	if apperrors.Is(err, apperrors.ErrNotFound) {
		status, page = http.StatusNotFound, view.ErrorPage{
			Title:   "Recipe not found",
			Message: "That recipe does not exist or has been deleted.",
		}
	}
	page.Chrome = h.chrome()

	h.render(c, status, func(w io.Writer) error {
		return view.RenderError(w, page)
	})
}

// render buffers the page so a template failure never leaves a half-written
// response.
func (h *RecipeHandler) render(c *gin.Context, status int, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
