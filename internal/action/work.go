package action

import (
	"context"
	"net/http"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/pkg/apierror"
)

var workViews = []string{
	cache.ViewAdminWorks,
	cache.ViewHome,
	cache.ViewWorks,
	cache.ViewServices,
}

// WorkInput is image-only: a portfolio entry is a photo attached to a
// service, nothing more.
type WorkInput struct {
	ServiceID string `validate:"required"`
	Image     *Upload
}

var workMessages = map[string]string{
	"ServiceID": "Veuillez sélectionner un service",
}

var workCreateErrors = map[string]string{
	apierror.CodeServiceNotFound: "Service non trouvé",
	apierror.CodeInvalidService:  "Service invalide",
	apierror.CodeValidation:      msgInvalidData,
	apierror.CodeFileRequired:    "L'image est obligatoire",
	apierror.CodeInvalidFileType: "Format d'image non supporté",
}

var workDeleteErrors = map[string]string{
	apierror.CodeNotFound: "Réalisation non trouvée",
}

// CreateWork posts a new portfolio entry. Works have no update operation:
// replacing the photo means deleting and re-creating.
func (a *Actions) CreateWork(ctx context.Context, token string, input WorkInput) Result {
	if msg := a.check(input, workMessages); msg != "" {
		return invalid(msg)
	}
	if msg := checkImage(input.Image, true, "Veuillez ajouter une image"); msg != "" {
		return invalid(msg)
	}

	form := apiclient.NewForm().
		Field("serviceId", input.ServiceID).
		File("image", input.Image.Filename, input.Image.ContentType, input.Image.Data)

	if _, err := a.api.SubmitForm(ctx, http.MethodPost, "/admin/works", form, token); err != nil {
		return fail(err, workCreateErrors, msgCreateFailed)
	}
	return a.succeed(ctx, "Réalisation créée avec succès", workViews)
}

// DeleteWork removes a portfolio entry.
func (a *Actions) DeleteWork(ctx context.Context, token, id string) Result {
	if _, err := a.api.Delete(ctx, "/admin/works/"+id, token); err != nil {
		return fail(err, workDeleteErrors, msgDeleteFailed)
	}
	return a.succeed(ctx, "Réalisation supprimée avec succès", workViews)
}
