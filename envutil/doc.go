// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package envutil wraps process environment mutation with echo output
// and provides helpers for moving between the map and KEY=VALUE slice
// representations of an environment.
//
// Mutating operations announce themselves the same way commands do:
//
//	env set_var CGO_ENABLED = 0
//	env chdir /src/app
//	env load_dotenv .env
//
// LoadDotenv reads .env files via github.com/joho/godotenv without
// overriding variables that are already set, matching dotenv
// conventions.
package envutil
