// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fsutil wraps common filesystem operations with echo output,
// so scripts announce what they touch the same way they announce the
// commands they run:
//
//	fs copy config.yaml -> backup/config.yaml
//	fs write 512 bytes -> report.txt
//
// Every wrapper delegates to the os package unchanged; echoing never
// alters behavior and honors the same NO_ECHO toggle as commands.
// AtomicWriteFile additionally writes through a temp file and rename so
// the target is never observed half-written.
package fsutil
