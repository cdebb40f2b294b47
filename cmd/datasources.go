package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/capmon/capmon"
)

type datasourceEntry struct {
	Name   string `yaml:"name" validate:"required"`
	Source string `yaml:"source" validate:"required,http_source"`
	Type   string `yaml:"type" validate:"required,oneof=prometheus graphite"`
}

type datasourcesFile struct {
	// Pointer tells missing or null key from empty list
	Datasources *[]datasourceEntry `yaml:"datasources"`
}

// LoadDatasources reads datasources file, result keeps file order
func LoadDatasources(path string) ([]capmon.DatasourceConfig, error) {
	file := datasourcesFile{}
	if err := ReadConfig(path, &file); err != nil {
		return nil, capmon.NewConfigError(path, err)
	}
	if file.Datasources == nil {
		return nil, capmon.NewConfigError(path, errors.New("datasources list is missing"))
	}

	validate := newDatasourceValidator()
	entries := *file.Datasources
	datasources := make([]capmon.DatasourceConfig, 0, len(entries))
	names := make(map[string]int, len(entries))

	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, capmon.NewConfigError(path, formatValidationError(i, err))
		}
		if first, ok := names[entry.Name]; ok {
			return nil, capmon.NewConfigError(path, fmt.Errorf("datasources[%d]: name %q is already used by datasources[%d]", i, entry.Name, first))
		}
		names[entry.Name] = i

		datasources = append(datasources, capmon.DatasourceConfig{
			Name:   entry.Name,
			Source: entry.Source,
			Type:   capmon.DatasourceType(entry.Type),
		})
	}

	return datasources, nil
}

func newDatasourceValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0] //nolint
	})
	validate.RegisterValidation("http_source", isHTTPSource) //nolint
	return validate
}

// isHTTPSource accepts absolute http and https urls only
func isHTTPSource(fl validator.FieldLevel) bool {
	address, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (address.Scheme == "http" || address.Scheme == "https") && address.Host != ""
}

func formatValidationError(index int, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("datasources[%d]: %w", index, err)
	}

	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "required":
		return fmt.Errorf("datasources[%d]: %s is required", index, fieldErr.Field())
	case "oneof":
		return fmt.Errorf("datasources[%d]: %s %q is not one of [%s]", index, fieldErr.Field(), fieldErr.Value(), fieldErr.Param())
	case "http_source":
		return fmt.Errorf("datasources[%d]: %s %q is not an absolute http(s) url", index, fieldErr.Field(), fieldErr.Value())
	default:
		return fmt.Errorf("datasources[%d]: %s failed on %s", index, fieldErr.Field(), fieldErr.Tag())
	}
}
