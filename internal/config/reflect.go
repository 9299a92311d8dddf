package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/imgajeed76/gridsheet/internal/util"
)

// ConfigField represents metadata about a config field extracted from struct tags
type ConfigField struct {
	Key      string // e.g., "ui.padding_rows"
	Default  string // default value as string
	Desc     string // description for help text
	Min      int    // minimum value for int fields (0 = no limit)
	Max      int    // maximum value for int fields (0 = no limit)
	Type     string // "string" or "int"
	Category string // e.g., "ui", "log", "sql"
}

// fieldCache caches parsed config fields to avoid repeated reflection
var fieldCache []ConfigField

// getConfigFields extracts all config fields from Config using reflection
func getConfigFields() []ConfigField {
	if fieldCache != nil {
		return fieldCache
	}

	var fields []ConfigField
	cfg := &Config{}
	extractFields(reflect.TypeOf(cfg).Elem(), &fields)

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})

	fieldCache = fields
	return fields
}

// extractFields recursively extracts config fields from a struct
func extractFields(t reflect.Type, fields *[]ConfigField) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		configKey := field.Tag.Get("config")
		if configKey == "" {
			// Nested sections (UIConfig, LogConfig, ...) carry only a toml tag
			if field.Type.Kind() == reflect.Struct && field.Tag.Get("toml") != "" {
				extractFields(field.Type, fields)
			}
			continue
		}

		cf := ConfigField{
			Key:      configKey,
			Default:  field.Tag.Get("default"),
			Desc:     field.Tag.Get("desc"),
			Category: strings.Split(configKey, ".")[0],
		}

		if minStr := field.Tag.Get("min"); minStr != "" {
			cf.Min, _ = strconv.Atoi(minStr)
		}
		if maxStr := field.Tag.Get("max"); maxStr != "" {
			cf.Max, _ = strconv.Atoi(maxStr)
		}

		switch field.Type.Kind() {
		case reflect.Int:
			cf.Type = "int"
		case reflect.String:
			cf.Type = "string"
		}

		*fields = append(*fields, cf)
	}
}

// findField finds a config field by key
func findField(key string) *ConfigField {
	for _, f := range getConfigFields() {
		if f.Key == key {
			return &f
		}
	}
	return nil
}

// lookup returns the settable struct field behind key
func lookup(cfg *Config, key string) (reflect.Value, bool) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	var section reflect.Value
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") == parts[0] {
			section = v.Field(i)
			break
		}
	}
	if !section.IsValid() || section.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	st := section.Type()
	for i := 0; i < st.NumField(); i++ {
		if st.Field(i).Tag.Get("config") == key {
			return section.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// getFieldValue gets a field value from the config using reflection
func getFieldValue(cfg *Config, key string) (string, bool) {
	fv, ok := lookup(cfg, strings.ToLower(key))
	if !ok {
		return "", false
	}
	switch fv.Kind() {
	case reflect.String:
		return fv.String(), true
	case reflect.Int:
		return strconv.FormatInt(fv.Int(), 10), true
	}
	return "", false
}

// setFieldValue sets a field value on the config using reflection
func setFieldValue(cfg *Config, key, value string) error {
	key = strings.ToLower(key)

	field := findField(key)
	if field == nil {
		return util.UnknownConfigKeyError(key)
	}

	fv, ok := lookup(cfg, key)
	if !ok {
		return fmt.Errorf("field not found: %s", key)
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(value)
		return nil

	case reflect.Int:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value: %s", value)
		}

		if field.Min != 0 && intVal < field.Min {
			return fmt.Errorf("value %d is below minimum %d", intVal, field.Min)
		}
		if field.Max != 0 && intVal > field.Max {
			return fmt.Errorf("value %d exceeds maximum %d", intVal, field.Max)
		}

		fv.SetInt(int64(intVal))
		return nil
	}

	return fmt.Errorf("unsupported field type for %s", key)
}

// ListKeys returns all available config keys
func ListKeys() []string {
	fields := getConfigFields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

// GenerateHelpText generates help text for config options
func GenerateHelpText() string {
	var sb strings.Builder

	byCategory := make(map[string][]ConfigField)
	for _, f := range getConfigFields() {
		byCategory[f.Category] = append(byCategory[f.Category], f)
	}

	categories := []struct {
		key   string
		title string
	}{
		{"ui", "Sheet view"},
		{"log", "Logging"},
		{"sql", "SQL data source"},
	}

	for _, cat := range categories {
		fields, ok := byCategory[cat.key]
		if !ok || len(fields) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("  %s:\n", cat.title))
		for _, f := range fields {
			defaultStr := ""
			if f.Default != "" {
				defaultStr = fmt.Sprintf(" (default: %s)", f.Default)
			}
			sb.WriteString(fmt.Sprintf("    %-25s %s%s\n", f.Key, f.Desc, defaultStr))
		}
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
