// Package action implements the admin mutations: one create/update/delete
// group per resource, bound to the back-office forms. Every action
// validates fully before touching the network, maps API error codes to
// French user-facing messages, and reports the view keys it invalidated.
package action

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/pkg/apierror"
	"github.com/delote/beauty-web/pkg/logger"
)

// Result is the uniform outcome of a mutating action. Invalidated lists the
// view keys whose caches were dropped after a successful write.
type Result struct {
	Success     bool
	Message     string
	Error       string
	Details     []apierror.FieldError
	Invalidated []string
}

// Generic fallback messages, the deliberate last tier after the per-action
// code table and the API's own message.
const (
	msgCreateFailed   = "Erreur lors de la création"
	msgUpdateFailed   = "Erreur lors de la mise à jour"
	msgDeleteFailed   = "Erreur lors de la suppression"
	msgServerFailed   = "Erreur de connexion au serveur"
	msgInvalidData    = "Données invalides"
	msgNothingToSave  = "Aucune modification à enregistrer"
	msgSessionExpired = "Session expirée. Veuillez vous reconnecter"
)

// Upload carries a file field extracted from a submitted form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

const maxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Actions executes the admin mutations. The bearer token is always an
// explicit argument; actions never look it up themselves.
type Actions struct {
	api      *apiclient.Client
	reval    *cache.Revalidator
	validate *validator.Validate
	log      *logger.Logger
}

func New(api *apiclient.Client, reval *cache.Revalidator, log *logger.Logger) *Actions {
	return &Actions{
		api:      api,
		reval:    reval,
		validate: validator.New(),
		log:      log,
	}
}

// check runs struct validation and returns the French message for the
// first failing rule, or "" when the input is valid. Message keys are
// "Field.tag" with a bare "Field" fallback.
func (a *Actions) check(input any, messages map[string]string) string {
	err := a.validate.Struct(input)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
		if msg, ok := messages[fe.Field()]; ok {
			return msg
		}
	}
	return msgInvalidData
}

// checkImage validates an upload against the image allow-list and size
// ceiling. required distinguishes create (image mandatory) from update
// (image optional, validated only when supplied).
func checkImage(img *Upload, required bool, missingMsg string) string {
	if img == nil || img.Size == 0 {
		if required {
			return missingMsg
		}
		return ""
	}
	if !allowedImageTypes[img.ContentType] {
		return "Format d'image non supporté. Utilisez JPEG, PNG ou WebP"
	}
	if img.Size > maxImageSize {
		return "L'image ne doit pas dépasser 5 Mo"
	}
	return ""
}

// parsePrice validates a submitted price string and normalizes it to
// exactly two fractional digits.
func parsePrice(raw string) (float64, string, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, "", false
	}
	normalized := fmt.Sprintf("%.2f", v)
	v, _ = strconv.ParseFloat(normalized, 64)
	return v, normalized, true
}

// succeed invalidates the given views and builds the success result.
func (a *Actions) succeed(ctx context.Context, message string, views []string) Result {
	a.reval.Invalidate(ctx, views...)
	return Result{Success: true, Message: message, Invalidated: views}
}

// fail maps an API error through the per-action table, then the API's own
// message, then the generic fallback. Transport failures always surface
// the French connection message regardless of table.
func fail(err error, table map[string]string, fallback string) Result {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		return Result{Success: false, Error: fallback}
	}
	if apiErr.Code == apierror.CodeNetwork {
		return Result{Success: false, Error: msgServerFailed}
	}
	if apiErr.Code == apierror.CodeUnauthorized {
		return Result{Success: false, Error: msgSessionExpired}
	}
	msg := table[apiErr.Code]
	if msg == "" {
		msg = apiErr.Message
	}
	if msg == "" {
		msg = fallback
	}
	return Result{Success: false, Error: msg, Details: apiErr.Details}
}

func invalid(msg string) Result {
	return Result{Success: false, Error: msg}
}
