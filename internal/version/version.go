// Package version carries the app identity baked in at build time:
//
//	go build -ldflags "-X github.com/PineFruitDev/TSTemplateBot/internal/version.Version=v1.0.0 \
//	                   -X github.com/PineFruitDev/TSTemplateBot/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import "runtime"

var (
	AppName        = "TemplateBot"
	AppDescription = "A starter template for building Discord slash-command bots."
	Version        = "dev"
	BuildDate      = ""
)

var GoVersion = runtime.Version()
