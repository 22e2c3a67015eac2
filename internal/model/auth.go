package model

import "encoding/json"

// User is the admin account behind the back office session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		LegacyID string `json:"_id"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.LegacyID
	}
	return nil
}

// LoginResult is the payload of a successful POST /admin/login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
