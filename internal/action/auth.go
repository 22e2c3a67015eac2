package action

import (
	"context"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/apierror"
)

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type ProfileInput struct {
	CurrentPassword string
	NewEmail        string
	NewPassword     string
	ConfirmPassword string
}

var loginErrors = map[string]string{
	apierror.CodeInvalidCredentials: "Email ou mot de passe incorrect",
	apierror.CodeUserNotFound:       "Utilisateur non trouvé",
	apierror.CodeValidation:         msgInvalidData,
}

var profileErrors = map[string]string{
	apierror.CodeInvalidPassword: "Mot de passe actuel incorrect",
	apierror.CodeValidation:      msgInvalidData,
	apierror.CodeEmailExists:     "Cet email est déjà utilisé",
}

// Login exchanges credentials for a bearer token. Cookie installation is
// the caller's job; the action only talks to the API.
func (a *Actions) Login(ctx context.Context, input LoginInput) (Result, *model.LoginResult) {
	if input.Email == "" || input.Password == "" {
		return invalid("Veuillez remplir tous les champs"), nil
	}

	body := map[string]string{
		"email":    input.Email,
		"password": input.Password,
	}
	env, err := a.api.PostJSON(ctx, "/admin/login", body, "")
	if err != nil {
		return fail(err, loginErrors, "Erreur de connexion"), nil
	}

	login, err := apiclient.DecodeData[model.LoginResult](env)
	if err != nil {
		return invalid(msgServerFailed), nil
	}
	return Result{Success: true}, &login
}

// UpdateProfile changes the admin's email and/or password. The current
// password is always required; at least one new value must be supplied;
// a password change needs a matching confirmation. The existing token
// stays valid afterwards.
func (a *Actions) UpdateProfile(ctx context.Context, token string, input ProfileInput) Result {
	if input.CurrentPassword == "" {
		return invalid("Le mot de passe actuel est requis")
	}
	if input.NewEmail == "" && input.NewPassword == "" {
		return invalid("Veuillez saisir un nouvel email ou un nouveau mot de passe")
	}
	if input.NewPassword != "" && input.NewPassword != input.ConfirmPassword {
		return invalid("Les mots de passe ne correspondent pas")
	}
	if input.NewPassword != "" && len(input.NewPassword) < 6 {
		return invalid("Le mot de passe doit contenir au moins 6 caractères")
	}

	body := map[string]string{
		"currentPassword": input.CurrentPassword,
	}
	if input.NewEmail != "" {
		body["newEmail"] = input.NewEmail
	}
	if input.NewPassword != "" {
		body["newPassword"] = input.NewPassword
	}

	if _, err := a.api.PutJSON(ctx, "/admin/profile", body, token); err != nil {
		return fail(err, profileErrors, "Erreur de mise à jour")
	}
	return Result{Success: true, Message: "Profil mis à jour avec succès"}
}
