// Package main is the C-ABI boundary (C9): a process-wide singleton engine
// guarded by a single mutex, exported as a flat set of ime_* functions per
// spec §5/§6. The handle-passing convention and POD result-with-free-call
// shape follow the teacher's bamboo-c.go (cgo.Handle over *FcitxBambooEngine,
// C.CString/C.free pairing), generalised here to a single implicit global
// rather than one handle per caller, matching spec §9's "host wrapper
// provides the global."
package main

/*
#include <stdint.h>
#include <stdbool.h>
#include <stdlib.h>

typedef struct {
	uint32_t chars[256];
	uint8_t action;
	uint8_t backspace;
	uint8_t count;
	uint8_t flags;
} ImeResult;
*/
import "C"

import (
	"sync"
	"unsafe"

	"gonhanh/internal/engine"
	"gonhanh/internal/flags"
	"gonhanh/internal/tables"
)

var (
	mu  sync.Mutex
	eng *engine.Engine
)

const flagKeyConsumed = 1 << 0

//export ime_init
func ime_init() {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		eng = engine.New()
	}
}

func toResult(e engine.Edit) *C.ImeResult {
	if e.Action == engine.ActionNone && len(e.Chars) == 0 {
		return nil
	}
	res := (*C.ImeResult)(C.malloc(C.size_t(unsafe.Sizeof(C.ImeResult{}))))
	n := len(e.Chars)
	if n > 256 {
		n = 256
	}
	for i := 0; i < n; i++ {
		res.chars[i] = C.uint32_t(e.Chars[i])
	}
	res.action = C.uint8_t(e.Action)
	bs := e.Backspace
	if bs > 255 {
		bs = 255
	}
	res.backspace = C.uint8_t(bs)
	res.count = C.uint8_t(n)
	var f C.uint8_t
	if e.Consumed {
		f |= flagKeyConsumed
	}
	res.flags = f
	return res
}

//export ime_key_ext
func ime_key_ext(key C.uint16_t, caps, ctrl, shift C.bool) *C.ImeResult {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		eng = engine.New()
	}
	edit := eng.ProcessKey(tables.Code(key), bool(caps), bool(ctrl), bool(shift))
	return toResult(edit)
}

//export ime_key_with_char
func ime_key_with_char(key C.uint16_t, caps, ctrl, shift C.bool, scalar C.uint32_t) *C.ImeResult {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		eng = engine.New()
	}
	edit := eng.ProcessKeyWithChar(tables.Code(key), bool(caps), bool(ctrl), bool(shift), rune(scalar))
	return toResult(edit)
}

//export ime_method
func ime_method(m C.int) {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		eng = engine.New()
	}
	if m == 1 {
		eng.SetMethod(flags.VNI)
	} else {
		eng.SetMethod(flags.Telex)
	}
}

//export ime_enabled
func ime_enabled(b C.bool) {
	withEngine(func() { eng.SetEnabled(bool(b)) })
}

//export ime_modern
func ime_modern(b C.bool) {
	withEngine(func() { eng.SetModern(bool(b)) })
}

//export ime_free_tone
func ime_free_tone(b C.bool) {
	withEngine(func() { eng.SetFreeTone(bool(b)) })
}

//export ime_skip_w_shortcut
func ime_skip_w_shortcut(b C.bool) {
	withEngine(func() { eng.SetSkipWShortcut(bool(b)) })
}

//export ime_bracket_shortcut
func ime_bracket_shortcut(b C.bool) {
	withEngine(func() { eng.SetBracketShortcut(bool(b)) })
}

//export ime_english_auto_restore
func ime_english_auto_restore(b C.bool) {
	withEngine(func() { eng.SetEnglishAutoRestore(bool(b)) })
}

//export ime_auto_capitalize
func ime_auto_capitalize(b C.bool) {
	withEngine(func() { eng.SetAutoCapitalize(bool(b)) })
}

//export ime_allow_foreign_consonants
func ime_allow_foreign_consonants(b C.bool) {
	withEngine(func() { eng.SetAllowForeignConsonants(bool(b)) })
}

//export ime_clear
func ime_clear() {
	withEngine(func() { eng.Clear() })
}

//export ime_clear_all
func ime_clear_all() {
	withEngine(func() { eng.ClearAll() })
}

//export ime_add_shortcut
func ime_add_shortcut(trigger, replacement *C.char) {
	withEngine(func() {
		eng.AddShortcut(C.GoString(trigger), C.GoString(replacement))
	})
}

//export ime_remove_shortcut
func ime_remove_shortcut(trigger *C.char) {
	withEngine(func() { eng.RemoveShortcut(C.GoString(trigger)) })
}

//export ime_clear_shortcuts
func ime_clear_shortcuts() {
	withEngine(func() { eng.ClearShortcuts() })
}

//export ime_restore_word
func ime_restore_word(word *C.char) {
	withEngine(func() { eng.RestoreWord(C.GoString(word)) })
}

//export ime_get_buffer
func ime_get_buffer(out *C.uint32_t, maxLen C.int) C.int {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		eng = engine.New()
	}
	buf := eng.GetBuffer()
	n := len(buf)
	if n > int(maxLen) {
		n = int(maxLen)
	}
	dst := (*[1 << 20]C.uint32_t)(unsafe.Pointer(out))
	for i := 0; i < n; i++ {
		dst[i] = C.uint32_t(buf[i])
	}
	return C.int(n)
}

//export ime_free
func ime_free(result *C.ImeResult) {
	if result != nil {
		C.free(unsafe.Pointer(result))
	}
}

// withEngine runs fn under the single global mutex, lazily constructing the
// singleton the same way ime_init does, so setter calls made before an
// explicit ime_init still take effect (ime_init is documented idempotent).
func withEngine(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		eng = engine.New()
	}
	fn()
}

func main() {}
