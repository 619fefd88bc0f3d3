//go:build js && wasm

// Command wasm is the browser build of the page effects.
//
//	GOOS=js GOARCH=wasm go build -o static/portfolio.wasm ./cmd/wasm
package main

import "github.com/uhey77/portfolio/internal/web"

func main() {
	web.Run()
	select {}
}
