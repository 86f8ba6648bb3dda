package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/tinyprs/pkg/codec"
	"github.com/ssargent/tinyprs/pkg/preset"
)

var ErrNotFound = errors.New("storage: preset not found")

var keyPrefix = []byte("prs/")

// Entry describes an archived preset
type Entry struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Name    string    `json:"name"`
	Size    int       `json:"size"`
}

// Archive stores validated preset records in a pebble database, keyed by KSUID
type Archive struct {
	db    *pebble.DB
	codec *codec.PresetCodec
}

func NewArchive(path string, c *codec.PresetCodec) (*Archive, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	return &Archive{db: db, codec: c}, nil
}

// Put stores a raw record after checking that it decodes
func (a *Archive) Put(data []byte) (Entry, error) {
	p, err := a.codec.Decode(data)
	if err != nil {
		return Entry{}, err
	}
	// only the record itself is kept
	return a.put(data[:codec.RecordSize], p)
}

// PutPreset encodes p and stores the record
func (a *Archive) PutPreset(p *preset.Preset) (Entry, error) {
	data, err := a.codec.Encode(p)
	if err != nil {
		return Entry{}, err
	}
	return a.put(data, p)
}

func (a *Archive) put(data []byte, p *preset.Preset) (Entry, error) {
	id := ksuid.New()
	if err := a.db.Set(key(id), data, pebble.Sync); err != nil {
		return Entry{}, err
	}
	return Entry{ID: id.String(), Created: id.Time(), Name: p.Name, Size: len(data)}, nil
}

// Get returns a copy of the stored record
func (a *Archive) Get(id string) ([]byte, error) {
	kid, err := ksuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	data, closer, err := a.db.Get(key(kid))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return append([]byte(nil), data...), nil
}

// GetPreset returns the decoded record
func (a *Archive) GetPreset(id string) (*preset.Preset, error) {
	data, err := a.Get(id)
	if err != nil {
		return nil, err
	}
	return a.codec.Decode(data)
}

// Replace overwrites an existing record
func (a *Archive) Replace(id string, data []byte) error {
	if _, err := a.Get(id); err != nil {
		return err
	}
	if _, err := a.codec.Decode(data); err != nil {
		return err
	}
	kid, _ := ksuid.Parse(id)
	return a.db.Set(key(kid), data[:codec.RecordSize], pebble.Sync)
}

func (a *Archive) Delete(id string) error {
	if _, err := a.Get(id); err != nil {
		return err
	}
	kid, _ := ksuid.Parse(id)
	return a.db.Delete(key(kid), pebble.Sync)
}

// List returns all archived presets in id order, which is creation order to the second
func (a *Archive) List() ([]Entry, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: []byte("prs0"), // '0' follows '/'
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key()[len(keyPrefix):])
		if err != nil {
			return nil, fmt.Errorf("corrupt archive key %q: %w", iter.Key(), err)
		}
		value := iter.Value()
		entry := Entry{ID: id.String(), Created: id.Time(), Size: len(value)}
		if p, err := a.codec.Decode(value); err == nil {
			entry.Name = p.Name
		}
		entries = append(entries, entry)
	}
	return entries, iter.Error()
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func key(id ksuid.KSUID) []byte {
	return append(append([]byte(nil), keyPrefix...), id.Bytes()...)
}
