// SPDX-License-Identifier: MPL-2.0

// Package config resolves the invoker settings from the environment.
//
// The whole configuration surface is the pair of dotted target paths: which
// registered application the appcall binary invokes, and which registered
// entrypoint the funccall and eventcall binaries invoke. Settings are loaded
// once at startup; nothing reads the environment after that.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	// AppTargetEnvVar selects the registered application path for appcall.
	AppTargetEnvVar = "LOCALCALL_APP_TARGET"
	// FuncTargetEnvVar selects the registered entrypoint path for funccall
	// and eventcall. The two binaries deliberately share one variable.
	FuncTargetEnvVar = "LOCALCALL_FUNC_TARGET"

	// DefaultAppTarget is used when AppTargetEnvVar is unset.
	DefaultAppTarget = "main.app"
	// DefaultFuncTarget is used when FuncTargetEnvVar is unset.
	DefaultFuncTarget = "main.main"
)

// Settings holds the resolved target paths.
type Settings struct {
	// AppTarget is the dotted path of the registered HTTP application.
	AppTarget string `mapstructure:"app_target"`
	// FuncTarget is the dotted path of the registered entrypoint function.
	FuncTarget string `mapstructure:"func_target"`
}

// Load populates Settings from the environment, falling back to the
// documented defaults.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("app_target", DefaultAppTarget)
	v.SetDefault("func_target", DefaultFuncTarget)

	// BindEnv with an explicit variable name never errors on two arguments,
	// but the signature keeps it checkable.
	if err := v.BindEnv("app_target", AppTargetEnvVar); err != nil {
		return nil, fmt.Errorf("bind %s: %w", AppTargetEnvVar, err)
	}
	if err := v.BindEnv("func_target", FuncTargetEnvVar); err != nil {
		return nil, fmt.Errorf("bind %s: %w", FuncTargetEnvVar, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &s, nil
}
