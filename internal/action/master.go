package action

import (
	"context"
	"net/http"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/pkg/apierror"
)

var masterViews = []string{
	cache.ViewAdminMasters,
	cache.ViewHome,
	cache.ViewMasters,
}

type MasterInput struct {
	FullName   string `validate:"required,min=2"`
	Speciality string `validate:"required,min=2"`
	Image      *Upload
}

type MasterUpdateInput struct {
	FullName   string `validate:"omitempty,min=2"`
	Speciality string `validate:"omitempty,min=2"`
	Image      *Upload
}

var masterMessages = map[string]string{
	"FullName":   "Le nom doit contenir au moins 2 caractères",
	"Speciality": "La spécialité doit contenir au moins 2 caractères",
}

var masterCreateErrors = map[string]string{
	apierror.CodeValidation:      msgInvalidData,
	apierror.CodeFileRequired:    "La photo est obligatoire",
	apierror.CodeInvalidFileType: "Format d'image non supporté",
}

var masterUpdateErrors = map[string]string{
	apierror.CodeNotFound:   "Professionnel non trouvé",
	apierror.CodeValidation: msgInvalidData,
}

var masterDeleteErrors = map[string]string{
	apierror.CodeNotFound: "Professionnel non trouvé",
}

// CreateMaster posts a new staff member as multipart, photo included.
func (a *Actions) CreateMaster(ctx context.Context, token string, input MasterInput) Result {
	if msg := a.check(input, masterMessages); msg != "" {
		return invalid(msg)
	}
	if msg := checkImage(input.Image, true, "Veuillez ajouter une photo"); msg != "" {
		return invalid(msg)
	}

	form := apiclient.NewForm().
		Field("fullName", input.FullName).
		Field("speciality", input.Speciality).
		File("image", input.Image.Filename, input.Image.ContentType, input.Image.Data)

	if _, err := a.api.SubmitForm(ctx, http.MethodPost, "/admin/masters", form, token); err != nil {
		return fail(err, masterCreateErrors, msgCreateFailed)
	}
	return a.succeed(ctx, "Professionnel créé avec succès", masterViews)
}

// UpdateMaster patches the submitted fields; the photo stays unless a new
// one is uploaded.
func (a *Actions) UpdateMaster(ctx context.Context, token, id string, input MasterUpdateInput) Result {
	if msg := a.check(input, masterMessages); msg != "" {
		return invalid(msg)
	}
	if msg := checkImage(input.Image, false, ""); msg != "" {
		return invalid(msg)
	}

	form := apiclient.NewForm()
	changed := false
	if input.FullName != "" {
		form.Field("fullName", input.FullName)
		changed = true
	}
	if input.Speciality != "" {
		form.Field("speciality", input.Speciality)
		changed = true
	}
	if input.Image != nil && input.Image.Size > 0 {
		form.File("image", input.Image.Filename, input.Image.ContentType, input.Image.Data)
		changed = true
	}
	if !changed {
		return invalid(msgNothingToSave)
	}

	if _, err := a.api.SubmitForm(ctx, http.MethodPatch, "/admin/masters/"+id, form, token); err != nil {
		return fail(err, masterUpdateErrors, msgUpdateFailed)
	}
	return a.succeed(ctx, "Professionnel mis à jour avec succès", masterViews)
}

// DeleteMaster removes a staff member.
func (a *Actions) DeleteMaster(ctx context.Context, token, id string) Result {
	if _, err := a.api.Delete(ctx, "/admin/masters/"+id, token); err != nil {
		return fail(err, masterDeleteErrors, msgDeleteFailed)
	}
	return a.succeed(ctx, "Professionnel supprimé avec succès", masterViews)
}
