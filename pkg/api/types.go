package api

import (
	"github.com/ssargent/tinyprs/pkg/preset"
	"github.com/ssargent/tinyprs/pkg/storage"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Kind    string      `json:"kind,omitempty"` // error kind, e.g. checksum_mismatch
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string // empty disables authentication
}

// VerifyResponse reports the checksum of an uploaded record
type VerifyResponse struct {
	OK       bool   `json:"ok"`
	Stored   string `json:"stored"`
	Computed string `json:"computed"`
}

// EncodeResponse is returned by the encode endpoint when JSON is requested
type EncodeResponse struct {
	Checksum string   `json:"checksum"`
	Ignored  []string `json:"ignored,omitempty"`
	Size     int      `json:"size"`
}

// PresetArchive defines the archive operations used by the API
type PresetArchive interface {
	Put(data []byte) (storage.Entry, error)
	Get(id string) ([]byte, error)
	GetPreset(id string) (*preset.Preset, error)
	Replace(id string, data []byte) error
	Delete(id string) error
	List() ([]storage.Entry, error)
}
