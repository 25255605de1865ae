// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package envutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jongio/script-core/echo"
)

// echoOp starts an echo line with the "env" prefix and the operation name.
func echoOp(op string) *echo.Echo {
	return echo.New().
		Styled("env", echo.BrightBlack).
		Styled(op, echo.Bold, echo.Cyan)
}

// Set sets an environment variable in the current process, echoing the
// assignment.
func Set(key, value string) error {
	echoOp("set_var").
		Styled(echo.Quote(key), echo.Bold, echo.Underline).
		Styled("=", echo.BrightBlack).
		Styled(echo.Quote(value), echo.Bold, echo.Underline).
		End()
	return os.Setenv(key, value)
}

// Unset removes an environment variable from the current process.
func Unset(key string) error {
	echoOp("unset_var").
		Styled(echo.Quote(key), echo.Bold, echo.Underline).
		End()
	return os.Unsetenv(key)
}

// Chdir changes the current working directory, echoing the move.
func Chdir(dir string) error {
	echoOp("chdir").
		Styled(echo.Quote(dir), echo.Bold, echo.Underline).
		End()
	return os.Chdir(dir)
}

// LoadDotenv loads variables from the given .env files into the process
// environment. Variables that are already set are not overridden. With
// no arguments it loads ".env" from the current directory.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	e := echoOp("load_dotenv")
	for _, p := range paths {
		e.Styled(echo.Quote(p), echo.Bold, echo.Underline)
	}
	e.End()
	return godotenv.Load(paths...)
}

// ReadDotenv parses the given .env files into a map without touching
// the process environment.
func ReadDotenv(paths ...string) (map[string]string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	return godotenv.Read(paths...)
}

// MapToSlice converts an env map into KEY=VALUE entries.
func MapToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// SliceToMap converts KEY=VALUE entries into a map, skipping malformed
// rows.
func SliceToMap(envSlice []string) map[string]string {
	result := make(map[string]string, len(envSlice))
	for _, envVar := range envSlice {
		parts := strings.SplitN(envVar, "=", 2)
		if len(parts) != 2 {
			continue
		}
		result[parts[0]] = parts[1]
	}
	return result
}

// FilterByPrefix returns environment variables matching a prefix.
// The prefix matching is case-insensitive for keys.
func FilterByPrefix(envVars map[string]string, prefix string) map[string]string {
	if envVars == nil {
		return map[string]string{}
	}

	result := make(map[string]string)
	prefixUpper := strings.ToUpper(prefix)

	for k, v := range envVars {
		if strings.HasPrefix(strings.ToUpper(k), prefixUpper) {
			result[k] = v
		}
	}

	return result
}
