//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"
)

// openLink opens url in a new browsing context.
func openLink(url string) error {
	w := js.Global().Get("window")
	if w.IsUndefined() {
		return errors.New("open link: no window")
	}
	if win := w.Call("open", url, "_blank"); win.IsNull() {
		return errors.New("open link: blocked by the browser")
	}
	return nil
}
