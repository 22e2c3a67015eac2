package action

import (
	"context"
	"net/http"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/pkg/apierror"
)

var serviceViews = []string{
	cache.ViewAdminServices,
	cache.ViewAdminWorks,
	cache.ViewAdminPrices,
	cache.ViewHome,
	cache.ViewServices,
	cache.ViewWorks,
	cache.ViewPrices,
}

type ServiceInput struct {
	Title       string `validate:"required,min=2"`
	Description string `validate:"required,min=10"`
	CategoryID  string `validate:"required"`
	Image       *Upload
}

// ServiceUpdateInput treats empty fields as unchanged: only submitted
// values are validated and sent.
type ServiceUpdateInput struct {
	Title       string `validate:"omitempty,min=2"`
	Description string `validate:"omitempty,min=10"`
	CategoryID  string
	Image       *Upload
}

var serviceMessages = map[string]string{
	"Title":       "Le titre doit contenir au moins 2 caractères",
	"Description": "La description doit contenir au moins 10 caractères",
	"CategoryID":  "Veuillez sélectionner une catégorie",
}

var serviceCreateErrors = map[string]string{
	apierror.CodeDuplicateSlug:    "Un service avec ce nom existe déjà",
	apierror.CodeInvalidCategory:  "Catégorie invalide",
	apierror.CodeCategoryNotFound: "Catégorie non trouvée",
	apierror.CodeInvalidSection:   `La catégorie doit être de type "service"`,
	apierror.CodeValidation:       msgInvalidData,
	apierror.CodeFileRequired:     "L'image est obligatoire",
	apierror.CodeInvalidFileType:  "Format d'image non supporté",
}

var serviceUpdateErrors = map[string]string{
	apierror.CodeNotFound:        "Service non trouvé",
	apierror.CodeDuplicateSlug:   "Un service avec ce nom existe déjà",
	apierror.CodeInvalidCategory: "Catégorie invalide",
	apierror.CodeValidation:      msgInvalidData,
}

var serviceDeleteErrors = map[string]string{
	apierror.CodeNotFound:  "Service non trouvé",
	apierror.CodeHasWorks:  "Impossible de supprimer: le service contient des réalisations",
	apierror.CodeHasPrices: "Impossible de supprimer: le service contient des tarifs",
}

// CreateService posts a new service as multipart, image included.
func (a *Actions) CreateService(ctx context.Context, token string, input ServiceInput) Result {
	if msg := a.check(input, serviceMessages); msg != "" {
		return invalid(msg)
	}
	if msg := checkImage(input.Image, true, "Veuillez ajouter une image"); msg != "" {
		return invalid(msg)
	}

	form := apiclient.NewForm().
		Field("title", input.Title).
		Field("description", input.Description).
		Field("categoryId", input.CategoryID).
		File("image", input.Image.Filename, input.Image.ContentType, input.Image.Data)

	if _, err := a.api.SubmitForm(ctx, http.MethodPost, "/admin/services", form, token); err != nil {
		return fail(err, serviceCreateErrors, msgCreateFailed)
	}
	return a.succeed(ctx, "Service créé avec succès", serviceViews)
}

// UpdateService patches the submitted fields; a new image replaces the old
// one, an absent image keeps it.
func (a *Actions) UpdateService(ctx context.Context, token, id string, input ServiceUpdateInput) Result {
	if msg := a.check(input, serviceMessages); msg != "" {
		return invalid(msg)
	}
	if msg := checkImage(input.Image, false, ""); msg != "" {
		return invalid(msg)
	}

	form := apiclient.NewForm()
	changed := false
	if input.Title != "" {
		form.Field("title", input.Title)
		changed = true
	}
	if input.Description != "" {
		form.Field("description", input.Description)
		changed = true
	}
	if input.CategoryID != "" {
		form.Field("categoryId", input.CategoryID)
		changed = true
	}
	if input.Image != nil && input.Image.Size > 0 {
		form.File("image", input.Image.Filename, input.Image.ContentType, input.Image.Data)
		changed = true
	}
	if !changed {
		return invalid(msgNothingToSave)
	}

	if _, err := a.api.SubmitForm(ctx, http.MethodPatch, "/admin/services/"+id, form, token); err != nil {
		return fail(err, serviceUpdateErrors, msgUpdateFailed)
	}
	return a.succeed(ctx, "Service mis à jour avec succès", serviceViews)
}

// DeleteService removes a service; the API refuses while works or prices
// still reference it.
func (a *Actions) DeleteService(ctx context.Context, token, id string) Result {
	if _, err := a.api.Delete(ctx, "/admin/services/"+id, token); err != nil {
		return fail(err, serviceDeleteErrors, msgDeleteFailed)
	}
	return a.succeed(ctx, "Service supprimé avec succès", serviceViews)
}
