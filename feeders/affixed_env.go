package feeders

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// AffixedEnvFeeder reads environment variables named PREFIX_<TAG>_SUFFIX for
// every field carrying an `env:"TAG"` tag. Unset or empty variables leave the
// field untouched. Slice fields take comma separated values.
type AffixedEnvFeeder struct {
	Prefix string
	Suffix string
}

// NewAffixedEnvFeeder creates a new AffixedEnvFeeder with the specified prefix and suffix
func NewAffixedEnvFeeder(prefix, suffix string) AffixedEnvFeeder {
	return AffixedEnvFeeder{Prefix: prefix, Suffix: suffix}
}

// Feed implements demokit.Feeder.
func (f AffixedEnvFeeder) Feed(structure any) error {
	inputType := reflect.TypeOf(structure)
	if inputType == nil || inputType.Kind() != reflect.Ptr || inputType.Elem().Kind() != reflect.Struct {
		return ErrEnvInvalidStructure
	}

	if f.Prefix == "" && f.Suffix == "" {
		return ErrEnvEmptyPrefixAndSuffix
	}

	return processStructFields(reflect.ValueOf(structure).Elem(), strings.ToUpper(f.Prefix), strings.ToUpper(f.Suffix))
}

func processStructFields(rv reflect.Value, prefix, suffix string) error {
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rv.Type().Field(i)

		if field.Kind() == reflect.Struct {
			if err := processStructFields(field, prefix, suffix); err != nil {
				return err
			}
			continue
		}

		envTag, exists := fieldType.Tag.Lookup("env")
		if !exists {
			continue
		}
		if err := setFieldFromEnv(field, envTag, prefix, suffix); err != nil {
			return fmt.Errorf("error in field '%s': %w", fieldType.Name, err)
		}
	}
	return nil
}

// EnvName builds the variable name for tag.
func EnvName(tag, prefix, suffix string) string {
	name := strings.ToUpper(tag)
	if prefix != "" {
		name = strings.ToUpper(prefix) + "_" + name
	}
	if suffix != "" {
		name = name + "_" + strings.ToUpper(suffix)
	}
	return name
}

func setFieldFromEnv(field reflect.Value, envTag, prefix, suffix string) error {
	envValue := os.Getenv(EnvName(envTag, prefix, suffix))
	if envValue == "" {
		return nil
	}
	if !field.CanSet() {
		return ErrEnvFieldCannotBeSet
	}

	if field.Kind() == reflect.Slice {
		return setSliceValue(field, envValue)
	}

	converted, err := cast.FromType(envValue, field.Type())
	if err != nil {
		return fmt.Errorf("%w to %v: %w", ErrEnvConversion, field.Type(), err)
	}
	field.Set(reflect.ValueOf(converted).Convert(field.Type()))
	return nil
}

func setSliceValue(field reflect.Value, envValue string) error {
	parts := strings.Split(envValue, ",")
	slice := reflect.MakeSlice(field.Type(), 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		converted, err := cast.FromType(part, field.Type().Elem())
		if err != nil {
			return fmt.Errorf("%w to %v: %w", ErrEnvConversion, field.Type().Elem(), err)
		}
		slice = reflect.Append(slice, reflect.ValueOf(converted).Convert(field.Type().Elem()))
	}

	field.Set(slice)
	return nil
}
