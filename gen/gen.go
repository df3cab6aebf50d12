// Package gen holds code generated from api/openapi.yaml.
package gen

//go:generate go tool ogen --target oas --package oas --clean ../api/openapi.yaml
