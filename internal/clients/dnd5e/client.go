package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"net/http"
	"sync"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

// Equipment is an equipment reference from the SRD
type Equipment struct {
	Key  string
	Name string
}

// Client reads equipment references from the D&D 5e API
type Client interface {
	ListEquipment() ([]*Equipment, error)
}

// equipmentAPI is the part of the dnd5e-api client this package uses
type equipmentAPI interface {
	ListEquipment() ([]*apiEntities.ReferenceItem, error)
}

type client struct {
	api equipmentAPI

	mu    sync.Mutex
	cache []*Equipment
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, combaterr.InvalidArgument("cfg is required")
	}

	api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, combaterr.Wrap(err, "failed to create dnd5e api client")
	}

	return &client{api: api}, nil
}

// ListEquipment returns every equipment reference. The list is fetched once.
func (c *client) ListEquipment() ([]*Equipment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil {
		return c.cache, nil
	}

	refs, err := c.api.ListEquipment()
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeUnavailable, "failed to list equipment")
	}

	equipment := make([]*Equipment, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		equipment = append(equipment, &Equipment{Key: ref.Key, Name: ref.Name})
	}

	c.cache = equipment
	return equipment, nil
}
