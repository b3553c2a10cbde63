// Package auth manages server credentials: keyring-backed token storage and the login/logout flows.
package auth

import (
	"github.com/zalando/go-keyring"

	"github.com/framecast-cli/framecast/constant"
)

const tokenUser = "access-token"

// SetToken persists the media server access token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(constant.Framecast, tokenUser, token)
}

// GetToken retrieves the media server access token from the system keyring.
func GetToken() (string, error) {
	return keyring.Get(constant.Framecast, tokenUser)
}

// DeleteToken removes the media server access token from the system keyring.
func DeleteToken() error {
	return keyring.Delete(constant.Framecast, tokenUser)
}
