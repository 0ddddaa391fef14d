package i18n

import (
	"encoding/json"
	"errors"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader decodes the raw content of a translation resource into a group.
// One Loader is registered per resource format (file extension).
type Loader interface {
	Load(data []byte) (Node, error)
}

// LoaderFunc adapts an unmarshal function to the Loader interface.
// The function must decode into a *map[string]any.
type LoaderFunc func(data []byte, v any) error

// Load decodes data with the wrapped function.
func (f LoaderFunc) Load(data []byte) (Node, error) {
	var raw map[string]any
	if err := f(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidResource, err)
	}
	return NodeFromMap(raw), nil
}

var (
	// JSONLoader reads JSON objects.
	JSONLoader Loader = LoaderFunc(json.Unmarshal)

	// YAMLLoader reads YAML mappings.
	YAMLLoader Loader = LoaderFunc(yaml.Unmarshal)

	// TOMLLoader reads TOML documents; tables become nested groups.
	TOMLLoader Loader = LoaderFunc(toml.Unmarshal)
)

// defaultLoaders are registered on every Resolver unless replaced.
func defaultLoaders() map[string]Loader {
	return map[string]Loader{
		"json": JSONLoader,
		"yaml": YAMLLoader,
		"yml":  YAMLLoader,
		"toml": TOMLLoader,
	}
}
