package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/framecast-cli/framecast/constant"
	"github.com/framecast-cli/framecast/key"
	"github.com/framecast-cli/framecast/log"
	"github.com/framecast-cli/framecast/network"
	"github.com/framecast-cli/framecast/util"
	"github.com/spf13/viper"
)

// SystemInfo is the public server descriptor returned before authentication.
type SystemInfo struct {
	ServerName string `json:"ServerName"`
	Version    string `json:"Version"`
}

type authenticateRequest struct {
	Username string `json:"Username"`
	Pw       string `json:"Pw"`
}

type authenticateResponse struct {
	AccessToken string `json:"AccessToken"`
	User        struct {
		ID string `json:"Id"`
	} `json:"User"`
}

// NormalizeAddress expands a user-supplied server address into a canonical base URL.
// Bare hosts get https and the scheme's default port; explicit schemes and ports win.
func NormalizeAddress(raw string) (string, error) {
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "/"))
	if raw == "" {
		return "", fmt.Errorf("empty server address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse server address: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if u.Port() == "" {
		if u.Scheme == "https" {
			u.Host = u.Hostname() + ":443"
		} else {
			u.Host = u.Hostname() + ":80"
		}
	}

	u.Path = ""
	return u.String(), nil
}

// SystemInfoPublic fetches the unauthenticated server descriptor used to
// verify connectivity and learn the server version before login.
func SystemInfoPublic(address string) (*SystemInfo, error) {
	resp, err := network.Client.Get(address + "/System/Info/Public")
	if err != nil {
		return nil, fmt.Errorf("fetch system info: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch system info: unexpected status %s", resp.Status)
	}

	var info SystemInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode system info: %w", err)
	}
	return &info, nil
}

// authorizationHeader builds the MediaBrowser authorization scheme value.
func authorizationHeader(deviceID, token string) string {
	header := fmt.Sprintf(
		`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
		viper.GetString(key.ServerClientName),
		viper.GetString(key.ServerDeviceName),
		deviceID,
		constant.Version,
	)
	if token != "" {
		header += fmt.Sprintf(`, Token="%s"`, token)
	}
	return header
}

// Login authenticates against the media server by name and persists the
// resulting credentials: token to the keyring, registration record to disk.
func Login(address, username, password string) (*Record, error) {
	address, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	info, err := SystemInfoPublic(address)
	if err != nil {
		return nil, err
	}

	deviceID := NewDeviceID()

	body, err := json.Marshal(authenticateRequest{Username: username, Pw: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, address+"/Users/AuthenticateByName", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authorizationHeader(deviceID, ""))

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("authenticate: unexpected status %s", resp.Status)
	}

	var auth authenticateResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("decode authenticate response: %w", err)
	}

	if auth.AccessToken == "" || auth.User.ID == "" {
		return nil, fmt.Errorf("authenticate: incomplete response from server")
	}

	if err := SetToken(auth.AccessToken); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	record := &Record{
		Address:       address,
		UserID:        auth.User.ID,
		DeviceID:      deviceID,
		ServerVersion: info.Version,
	}
	if err := SaveRecord(record); err != nil {
		return nil, fmt.Errorf("store server record: %w", err)
	}

	log.Infof("logged in to %s (server %s)", address, info.Version)
	return record, nil
}

// Logout ends the remote session and clears local credentials. Remote failures
// are logged but do not block the local cleanup.
func Logout() error {
	record, err := LoadRecord()
	if err == nil {
		token, tokenErr := GetToken()
		if tokenErr == nil {
			req, reqErr := http.NewRequest(http.MethodPost, record.Address+"/Sessions/Logout", nil)
			if reqErr == nil {
				req.Header.Set("Authorization", authorizationHeader(record.DeviceID, token))
				if resp, doErr := network.Client.Do(req); doErr != nil {
					log.Warnf("server logout failed: %v", doErr)
				} else {
					util.Ignore(resp.Body.Close)
				}
			}
		}
	}

	if err := DeleteToken(); err != nil {
		log.Warnf("delete token: %v", err)
	}
	return DeleteRecord()
}
