package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/framecast-cli/framecast/filesystem"
	"github.com/framecast-cli/framecast/where"
	"github.com/metafates/gache"
	"github.com/spf13/viper"

	"github.com/framecast-cli/framecast/key"
)

// Record is the persisted registration of this device against a media server.
// The access token itself lives in the system keyring, never on disk.
type Record struct {
	Address       string `json:"address"`
	UserID        string `json:"user_id"`
	DeviceID      string `json:"device_id"`
	ServerVersion string `json:"server_version"`
}

var recordCacher = gache.New[*Record](&gache.Options{
	Path:       where.Server(),
	FileSystem: &filesystem.GacheFs{},
})

// ErrNotLoggedIn indicates that no server registration exists on this machine.
var ErrNotLoggedIn = errors.New("not logged in, run `framecast login` first")

// SaveRecord persists the server registration record to disk.
func SaveRecord(r *Record) error {
	return recordCacher.Set(r)
}

// LoadRecord retrieves the persisted server registration, if any.
func LoadRecord() (*Record, error) {
	record, expired, err := recordCacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || record == nil {
		return nil, ErrNotLoggedIn
	}
	return record, nil
}

// DeleteRecord removes the persisted server registration.
func DeleteRecord() error {
	return recordCacher.Set(nil)
}

// IsAuthenticated reports whether both a server registration and an access token are present.
// The stream reconnect policy consults this on every retry.
func IsAuthenticated() bool {
	if _, err := LoadRecord(); err != nil {
		return false
	}
	_, err := GetToken()
	return err == nil
}

// NewDeviceID derives a unique, stable-per-login device identifier from the
// configured client name and the current timestamp.
func NewDeviceID() string {
	seed := fmt.Sprintf("%s|%d", viper.GetString(key.ServerClientName), time.Now().UnixNano())
	return base64.StdEncoding.EncodeToString([]byte(seed))
}
