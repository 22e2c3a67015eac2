package action

import (
	"context"
	"net/http"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/pkg/apierror"
)

var productViews = []string{
	cache.ViewAdminProducts,
	cache.ViewHome,
	cache.ViewProducts,
}

type ProductInput struct {
	Title       string `validate:"required,min=2"`
	Description string `validate:"required,min=10"`
	Price       string `validate:"required"`
	Code        string `validate:"required"`
	Brand       string `validate:"required"`
	CategoryID  string `validate:"required"`
	Image       *Upload
}

type ProductUpdateInput struct {
	Title       string `validate:"omitempty,min=2"`
	Description string `validate:"omitempty,min=10"`
	Price       string
	Code        string
	Brand       string
	CategoryID  string
	Image       *Upload
}

var productMessages = map[string]string{
	"Title":       "Le titre doit contenir au moins 2 caractères",
	"Description": "La description doit contenir au moins 10 caractères",
	"Price":       "Le prix doit être un nombre positif",
	"Code":        "Le code article est obligatoire",
	"Brand":       "La marque est obligatoire",
	"CategoryID":  "Veuillez sélectionner une catégorie",
}

var productCreateErrors = map[string]string{
	apierror.CodeDuplicateSlug:    "Un produit avec ce nom existe déjà",
	apierror.CodeDuplicateCode:    "Ce code article existe déjà",
	apierror.CodeInvalidCategory:  "Catégorie invalide",
	apierror.CodeCategoryNotFound: "Catégorie non trouvée",
	apierror.CodeInvalidSection:   `La catégorie doit être de type "product"`,
	apierror.CodeValidation:       msgInvalidData,
	apierror.CodeFileRequired:     "L'image est obligatoire",
	apierror.CodeInvalidFileType:  "Format d'image non supporté",
}

var productUpdateErrors = map[string]string{
	apierror.CodeNotFound:        "Produit non trouvé",
	apierror.CodeDuplicateSlug:   "Un produit avec ce nom existe déjà",
	apierror.CodeDuplicateCode:   "Ce code article existe déjà",
	apierror.CodeInvalidCategory: "Catégorie invalide",
	apierror.CodeValidation:      msgInvalidData,
}

var productDeleteErrors = map[string]string{
	apierror.CodeNotFound: "Produit non trouvé",
}

// CreateProduct posts a new product as multipart. The submitted price is
// normalized to exactly two fractional digits ("19.9" persists as 19.90).
func (a *Actions) CreateProduct(ctx context.Context, token string, input ProductInput) Result {
	if msg := a.check(input, productMessages); msg != "" {
		return invalid(msg)
	}
	_, normalized, ok := parsePrice(input.Price)
	if !ok {
		return invalid(productMessages["Price"])
	}
	if msg := checkImage(input.Image, true, "Veuillez ajouter une image"); msg != "" {
		return invalid(msg)
	}

	form := apiclient.NewForm().
		Field("title", input.Title).
		Field("description", input.Description).
		Field("price", normalized).
		Field("code", input.Code).
		Field("brand", input.Brand).
		Field("categoryId", input.CategoryID).
		File("image", input.Image.Filename, input.Image.ContentType, input.Image.Data)

	if _, err := a.api.SubmitForm(ctx, http.MethodPost, "/admin/products", form, token); err != nil {
		return fail(err, productCreateErrors, msgCreateFailed)
	}
	return a.succeed(ctx, "Produit créé avec succès", productViews)
}

// UpdateProduct patches the submitted fields as multipart.
func (a *Actions) UpdateProduct(ctx context.Context, token, id string, input ProductUpdateInput) Result {
	if msg := a.check(input, productMessages); msg != "" {
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
	if input.Price != "" {
		_, normalized, ok := parsePrice(input.Price)
		if !ok {
			return invalid(productMessages["Price"])
		}
		form.Field("price", normalized)
		changed = true
	}
	if input.Code != "" {
		form.Field("code", input.Code)
		changed = true
	}
	if input.Brand != "" {
		form.Field("brand", input.Brand)
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

	if _, err := a.api.SubmitForm(ctx, http.MethodPatch, "/admin/products/"+id, form, token); err != nil {
		return fail(err, productUpdateErrors, msgUpdateFailed)
	}
	return a.succeed(ctx, "Produit mis à jour avec succès", productViews)
}

// DeleteProduct removes a product.
func (a *Actions) DeleteProduct(ctx context.Context, token, id string) Result {
	if _, err := a.api.Delete(ctx, "/admin/products/"+id, token); err != nil {
		return fail(err, productDeleteErrors, msgDeleteFailed)
	}
	return a.succeed(ctx, "Produit supprimé avec succès", productViews)
}
