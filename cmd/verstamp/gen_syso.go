package main

// This file contains go:generate commands for building the Windows metadata resources.
// Run `go generate` in this directory to regenerate them.
//
// The first step resolves the version into versioninfo.json; the second
// hands that document to goversioninfo for the actual syso embedding.

//go:generate go run gen_version.go
//go:generate go run -mod=mod github.com/josephspurrier/goversioninfo/cmd/goversioninfo -64 -o verstamp_windows_amd64.syso versioninfo.json
