package action

import (
	"context"
	"strconv"

	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/apierror"
)

// categoryViews: category titles appear on every listing that joins
// through them, so service, product and price pages go stale too.
var categoryViews = []string{
	cache.ViewAdminCategories,
	cache.ViewAdminServices,
	cache.ViewAdminProducts,
	cache.ViewAdminPrices,
	cache.ViewServices,
	cache.ViewProducts,
	cache.ViewPrices,
}

type CategoryInput struct {
	Title     string `validate:"required,min=2"`
	Section   string
	SortOrder string
}

var categoryMessages = map[string]string{
	"Title": "Le titre doit contenir au moins 2 caractères",
}

var categoryCreateErrors = map[string]string{
	apierror.CodeDuplicateSlug: "Une catégorie avec ce nom existe déjà",
	apierror.CodeValidation:    msgInvalidData,
}

var categoryUpdateErrors = map[string]string{
	apierror.CodeNotFound:      "Catégorie non trouvée",
	apierror.CodeDuplicateSlug: "Une catégorie avec ce nom existe déjà",
	apierror.CodeValidation:    msgInvalidData,
}

var categoryDeleteErrors = map[string]string{
	apierror.CodeNotFound:            "Catégorie non trouvée",
	apierror.CodeHasDependencies:     "Impossible de supprimer: la catégorie contient des éléments",
	apierror.CodeCategoryHasServices: "Impossible de supprimer: la catégorie contient des services",
	apierror.CodeCategoryHasWorks:    "Impossible de supprimer: la catégorie contient des réalisations",
	apierror.CodeCategoryHasProducts: "Impossible de supprimer: la catégorie contient des produits",
}

// CreateCategory validates and posts a new category. The section is fixed
// at creation; there is no way to change it afterwards.
func (a *Actions) CreateCategory(ctx context.Context, token string, input CategoryInput) Result {
	if msg := a.check(input, categoryMessages); msg != "" {
		return invalid(msg)
	}
	if !model.ValidSection(input.Section) {
		return invalid("Section invalide")
	}

	sortOrder, _ := strconv.Atoi(input.SortOrder)
	body := map[string]any{
		"title":     input.Title,
		"section":   input.Section,
		"sortOrder": sortOrder,
	}

	if _, err := a.api.PostJSON(ctx, "/admin/categories", body, token); err != nil {
		return fail(err, categoryCreateErrors, msgCreateFailed)
	}
	return a.succeed(ctx, "Catégorie créée avec succès", categoryViews)
}

// UpdateCategory patches only the submitted fields. An empty change set
// returns early, before any network call. The section field is absent on
// purpose: it is immutable.
func (a *Actions) UpdateCategory(ctx context.Context, token, id string, input CategoryInput) Result {
	body := map[string]any{}
	if input.Title != "" {
		body["title"] = input.Title
	}
	if input.SortOrder != "" {
		sortOrder, err := strconv.Atoi(input.SortOrder)
		if err != nil {
			return invalid(msgInvalidData)
		}
		body["sortOrder"] = sortOrder
	}

	if len(body) == 0 {
		return invalid(msgNothingToSave)
	}

	if input.Title != "" {
		if msg := a.check(input, categoryMessages); msg != "" {
			return invalid(msg)
		}
	}

	if _, err := a.api.PatchJSON(ctx, "/admin/categories/"+id, body, token); err != nil {
		return fail(err, categoryUpdateErrors, msgUpdateFailed)
	}
	return a.succeed(ctx, "Catégorie mise à jour avec succès", categoryViews)
}

// DeleteCategory removes a category. The API refuses when dependents
// exist; each dependent kind has its own error code and message.
func (a *Actions) DeleteCategory(ctx context.Context, token, id string) Result {
	if _, err := a.api.Delete(ctx, "/admin/categories/"+id, token); err != nil {
		return fail(err, categoryDeleteErrors, msgDeleteFailed)
	}
	return a.succeed(ctx, "Catégorie supprimée avec succès", categoryViews)
}

// UpdateCategorySortOrder reorders one category in place.
func (a *Actions) UpdateCategorySortOrder(ctx context.Context, token, id string, sortOrder int) Result {
	body := map[string]any{"sortOrder": sortOrder}
	if _, err := a.api.PatchJSON(ctx, "/admin/categories/"+id+"/sort-order", body, token); err != nil {
		return fail(err, nil, msgUpdateFailed)
	}
	return a.succeed(ctx, "", categoryViews)
}
