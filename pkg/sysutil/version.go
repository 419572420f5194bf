package sysutil

// Version is the current version of go-sysutil.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X github.com/opd-ai/go-sysutil/pkg/sysutil.Version=x.y.z"
var Version = "0.1.0-dev"
