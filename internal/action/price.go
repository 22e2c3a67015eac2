package action

import (
	"context"
	"strconv"

	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/pkg/apierror"
)

var priceViews = []string{
	cache.ViewAdminPrices,
	cache.ViewHome,
	cache.ViewPrices,
}

type PriceInput struct {
	Title     string `validate:"required,min=2"`
	Price     string `validate:"required"`
	ServiceID string `validate:"required"`
	SortOrder string
}

type PriceUpdateInput struct {
	Title     string `validate:"omitempty,min=2"`
	Price     string
	ServiceID string
	SortOrder string
}

var priceMessages = map[string]string{
	"Title":     "Le titre doit contenir au moins 2 caractères",
	"Price":     "Le prix doit être un nombre positif",
	"ServiceID": "Veuillez sélectionner un service",
}

var priceCreateErrors = map[string]string{
	apierror.CodeServiceNotFound: "Service non trouvé",
	apierror.CodeInvalidService:  "Service invalide",
	apierror.CodeValidation:      msgInvalidData,
}

var priceUpdateErrors = map[string]string{
	apierror.CodeNotFound:        "Tarif non trouvé",
	apierror.CodeServiceNotFound: "Service non trouvé",
	apierror.CodeInvalidService:  "Service invalide",
	apierror.CodeValidation:      msgInvalidData,
}

var priceDeleteErrors = map[string]string{
	apierror.CodeNotFound: "Tarif non trouvé",
}

// CreatePrice posts a new tariff line. The amount is normalized to two
// fractional digits before submission.
func (a *Actions) CreatePrice(ctx context.Context, token string, input PriceInput) Result {
	if msg := a.check(input, priceMessages); msg != "" {
		return invalid(msg)
	}
	amount, _, ok := parsePrice(input.Price)
	if !ok {
		return invalid(priceMessages["Price"])
	}

	sortOrder, _ := strconv.Atoi(input.SortOrder)
	body := map[string]any{
		"title":     input.Title,
		"price":     amount,
		"serviceId": input.ServiceID,
		"sortOrder": sortOrder,
	}

	if _, err := a.api.PostJSON(ctx, "/admin/prices", body, token); err != nil {
		return fail(err, priceCreateErrors, msgCreateFailed)
	}
	return a.succeed(ctx, "Tarif créé avec succès", priceViews)
}

// UpdatePrice patches only the submitted fields; empty change sets return
// early without a network call.
func (a *Actions) UpdatePrice(ctx context.Context, token, id string, input PriceUpdateInput) Result {
	if msg := a.check(input, priceMessages); msg != "" {
		return invalid(msg)
	}

	body := map[string]any{}
	if input.Title != "" {
		body["title"] = input.Title
	}
	if input.Price != "" {
		amount, _, ok := parsePrice(input.Price)
		if !ok {
			return invalid(priceMessages["Price"])
		}
		body["price"] = amount
	}
	if input.ServiceID != "" {
		body["serviceId"] = input.ServiceID
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

	if _, err := a.api.PatchJSON(ctx, "/admin/prices/"+id, body, token); err != nil {
		return fail(err, priceUpdateErrors, msgUpdateFailed)
	}
	return a.succeed(ctx, "Tarif mis à jour avec succès", priceViews)
}

// DeletePrice removes a tariff line.
func (a *Actions) DeletePrice(ctx context.Context, token, id string) Result {
	if _, err := a.api.Delete(ctx, "/admin/prices/"+id, token); err != nil {
		return fail(err, priceDeleteErrors, msgDeleteFailed)
	}
	return a.succeed(ctx, "Tarif supprimé avec succès", priceViews)
}

// UpdatePriceSortOrder reorders one tariff line in place.
func (a *Actions) UpdatePriceSortOrder(ctx context.Context, token, id string, sortOrder int) Result {
	body := map[string]any{"sortOrder": sortOrder}
	if _, err := a.api.PatchJSON(ctx, "/admin/prices/"+id, body, token); err != nil {
		return fail(err, nil, msgUpdateFailed)
	}
	return a.succeed(ctx, "", priceViews)
}
