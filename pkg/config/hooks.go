package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/electron-kit/pkg/types"
)

// stringToPlatformHookFunc accepts platform aliases such as "mac" or "win32"
func stringToPlatformHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(types.Platform("")) {
			return data, nil
		}
		s := reflect.ValueOf(data).String()
		if s == "" {
			return types.Platform(""), nil
		}
		return types.ParsePlatform(s)
	}
}

// stringToPermissionHookFunc rejects unknown execution levels at load time
func stringToPermissionHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(types.Permission("")) {
			return data, nil
		}
		return types.ParsePermission(reflect.ValueOf(data).String())
	}
}
