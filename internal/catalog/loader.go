package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/InventorySystem_Go/internal/domain"
	"github.com/osse101/InventorySystem_Go/internal/logger"
	"github.com/osse101/InventorySystem_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItem = errors.New("duplicate item name")
	ErrDuplicateStat = errors.New("duplicate stat name")
	ErrInvalidConfig = errors.New("invalid catalog")
)

// Config represents a catalog file
type Config struct {
	Version     string    `json:"version" validate:"required"`
	Description string    `json:"description"`
	Stats       []string  `json:"stats" validate:"dive,required"`
	Items       []ItemDef `json:"items" validate:"required,min=1,dive"`
}

// BoostDef is a stat boost as written in the catalog
type BoostDef struct {
	Boost    int `json:"boost"`
	Duration int `json:"duration"`
}

// ItemDef represents a single item type in the catalog.
// MaximumQuantity and Consumable fall back to the registration defaults when omitted.
type ItemDef struct {
	Name            string              `json:"name" validate:"required"`
	FlavorText      string              `json:"flavor_text"`
	Thumbnail       string              `json:"thumbnail"`
	FullImage       string              `json:"full_image"`
	StatBoosts      map[string]BoostDef `json:"stat_boosts"`
	MaximumQuantity *int                `json:"maximum_quantity,omitempty" validate:"omitempty,gte=0"`
	Consumable      *bool               `json:"consumable,omitempty"`
	Equippable      bool                `json:"equippable"`
}

// Loader handles loading and validating catalog files
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFS),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	config, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse validates raw catalog JSON against the schema and decodes it
func (l *catalogLoader) Parse(data []byte) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, "schemas/"+SchemaFileName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, SchemaFileName, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	return &config, nil
}

// Validate checks the catalog for errors the schema cannot express
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	if err := l.validate.Struct(config); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf(ErrFmtFieldInvalid, ErrInvalidConfig, fieldErrs[0].Namespace(), fieldErrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	stats := make(map[string]bool, len(config.Stats))
	for _, stat := range config.Stats {
		if stats[stat] {
			return fmt.Errorf(ErrFmtDuplicateStat, ErrDuplicateStat, stat)
		}
		stats[stat] = true
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		item := &config.Items[i]
		if names[item.Name] {
			return fmt.Errorf(ErrFmtDuplicateItem, ErrDuplicateItem, item.Name)
		}
		names[item.Name] = true

		for stat := range item.StatBoosts {
			if !stats[stat] {
				return fmt.Errorf(ErrFmtItemUndeclaredStat, ErrInvalidConfig, item.Name, stat)
			}
		}
	}

	return nil
}

// Definition converts the catalog entry into an item definition
func (d ItemDef) Definition() domain.ItemDefinition {
	opts := []domain.ItemOption{domain.WithFlavorText(d.FlavorText)}
	if d.Thumbnail != "" || d.FullImage != "" {
		opts = append(opts, domain.WithImages(assetRef(d.Thumbnail), assetRef(d.FullImage)))
	}
	for stat, boost := range d.StatBoosts {
		opts = append(opts, domain.WithStatBoost(domain.StatName(stat), boost.Boost, boost.Duration))
	}
	if d.MaximumQuantity != nil {
		opts = append(opts, domain.WithMaximumQuantity(*d.MaximumQuantity))
	}
	if d.Consumable != nil {
		opts = append(opts, domain.Consumable(*d.Consumable))
	}
	opts = append(opts, domain.Equippable(d.Equippable))
	return domain.NewItemDefinition(d.Name, opts...)
}

func assetRef(path string) domain.AssetRef {
	if path == "" {
		return nil
	}
	return domain.AssetPath(path)
}

// Registrar is the registration surface of an inventory
type Registrar interface {
	RegisterStats(names ...domain.StatName) error
	RegisterItemType(def domain.ItemDefinition) error
}

// ApplyResult counts what a catalog registered
type ApplyResult struct {
	StatsRegistered     int
	ItemTypesRegistered int
}

// Apply registers the catalog's stats and then its item types. It stops at
// the first rejected registration; item types registered before it remain.
func Apply(ctx context.Context, config *Config, target Registrar) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	if config == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	stats := make([]domain.StatName, 0, len(config.Stats))
	for _, stat := range config.Stats {
		stats = append(stats, domain.StatName(stat))
	}
	if err := target.RegisterStats(stats...); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterStatsFailed, err)
	}

	result := &ApplyResult{StatsRegistered: len(stats)}
	for _, item := range config.Items {
		if err := target.RegisterItemType(item.Definition()); err != nil {
			return result, fmt.Errorf(ErrMsgRegisterItemFailed, item.Name, err)
		}
		result.ItemTypesRegistered++
		log.Debug(LogMsgItemRegistered, "item", item.Name)
	}

	log.Info(LogMsgCatalogApplied,
		"version", config.Version,
		"stats", result.StatsRegistered,
		"item_types", result.ItemTypesRegistered)
	return result, nil
}
