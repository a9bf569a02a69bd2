/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discordsdkgo

// Version is the semantic version of this binding.
// For development builds, this will be "dev".
// For release builds, run: just version-update
// This will update the version based on the latest git tag.
const Version = "0.0.1"
