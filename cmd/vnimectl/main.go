// Command vnimectl is a small host around the composition engine: a pipe
// mode that reads ASCII keystroke lines from stdin and writes the composed
// Vietnamese text to stdout, and an --interactive mode that reads the
// terminal directly. The flag-parsing and stdin/stdout plumbing follow
// hanfe-tty's main.go; --interactive follows the eiannone/keyboard raw-mode
// pattern vendored alongside it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"

	"gonhanh/internal/config"
	"gonhanh/internal/engine"
	"gonhanh/internal/flags"
	"gonhanh/internal/tables"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vnimectl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	method := flag.String("method", "telex", "input method: telex or vni")
	configPath := flag.String("config", "", "path to an ini config file (engine flags + shortcuts)")
	interactive := flag.Bool("interactive", false, "read the terminal directly instead of piping lines")
	flag.Parse()

	e := engine.New()
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	config.Apply(e, cfg)

	switch *method {
	case "vni":
		e.SetMethod(flags.VNI)
	default:
		e.SetMethod(flags.Telex)
	}

	if *interactive {
		return runInteractive(e)
	}
	return runPipe(e)
}

// runPipe reads lines of raw ASCII keystrokes from stdin and writes the
// composed result of each line to stdout, one line in, one line out.
func runPipe(e *engine.Engine) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		e.ClearAll()
		line := []rune(scanner.Text())
		out := composeLine(e, line)
		if _, err := writer.WriteString(string(out)); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// composeLine feeds each rune of line through the engine as if it were a
// keystroke, applying each returned Edit against a growing display buffer.
func composeLine(e *engine.Engine, line []rune) []rune {
	var out []rune
	for _, ch := range line {
		key, shift, ok := tables.FromASCII(ch)
		caps := ch >= 'A' && ch <= 'Z'
		if !ok {
			out = append(out, ch)
			continue
		}
		edit := e.ProcessKey(key, caps, false, shift)
		out = applyEdit(out, edit, ch)
	}
	return out
}

func applyEdit(out []rune, edit engine.Edit, raw rune) []rune {
	if edit.Backspace > 0 {
		n := edit.Backspace
		if n > len(out) {
			n = len(out)
		}
		out = out[:len(out)-n]
	}
	out = append(out, edit.Chars...)
	if !edit.Consumed {
		out = append(out, raw)
	}
	return out
}

// runInteractive puts the terminal into raw mode and composes as the user
// types, echoing the live buffer after every keystroke. Ctrl+C quits; Esc is
// passed to the engine like any other key.
func runInteractive(e *engine.Engine) error {
	if err := keyboard.Open(); err != nil {
		return err
	}
	defer keyboard.Close()

	fmt.Fprintln(os.Stderr, "vnimectl interactive mode. Ctrl+C to quit.")
	var out []rune
	for {
		ch, key, err := keyboard.GetSingleKey()
		if err != nil {
			return err
		}
		if key == keyboard.KeyCtrlC {
			fmt.Fprintln(os.Stderr)
			return nil
		}

		code, shift, caps, consumedKey, ok := decodeTerminalKey(ch, key)
		if !ok {
			continue
		}
		edit := e.ProcessKey(code, caps, false, shift)
		out = applyEdit(out, edit, consumedKey)

		fmt.Fprintf(os.Stderr, "\r\033[K%s", string(out))
	}
}

// decodeTerminalKey maps one eiannone/keyboard event onto the engine's
// virtual-keycode domain.
func decodeTerminalKey(ch rune, key keyboard.Key) (code tables.Code, shift, caps bool, raw rune, ok bool) {
	switch key {
	case keyboard.KeySpace:
		return tables.Space, false, false, ' ', true
	case keyboard.KeyEnter:
		return tables.Return, false, false, '\n', true
	case keyboard.KeyTab:
		return tables.Tab, false, false, '\t', true
	case keyboard.KeyBackspace:
		return tables.Delete, false, false, 0, true
	case keyboard.KeyEsc:
		return tables.Esc, false, false, 0, true
	default:
		if ch == 0 {
			break
		}
		c, s, found := tables.FromASCII(ch)
		if !found {
			return 0, false, false, ch, false
		}
		return c, s, ch >= 'A' && ch <= 'Z', ch, true
	}
	return 0, false, false, 0, false
}
