// soundex - phonetic code CLI
//
// Usage:
//
//	soundex encode [--full] [--fold] [word...]  Print the code for each word
//	soundex equal [--full] [--fold] A B         Compare two words by code
//	soundex version                             Print version info
//
// With no words, encode reads whitespace-separated tokens from stdin.
// --full keeps the untruncated code; --fold strips diacritics first.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Neumenon/soundex/soundex"
)

const libVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	full := false
	fold := false
	var words []string
	for _, arg := range os.Args[2:] {
		switch arg {
		case "--full":
			full = true
		case "--fold":
			fold = true
		default:
			words = append(words, arg)
		}
	}

	switch cmd {
	case "encode":
		if len(words) == 0 {
			words = readTokens(os.Stdin)
		}
		for _, w := range words {
			fmt.Println(code(w, full, fold))
		}

	case "equal":
		if len(words) != 2 {
			fatal("equal: want exactly two words, got %d", len(words))
		}
		a, b := code(words[0], full, fold), code(words[1], full, fold)
		fmt.Println(a == b)
		if a != b {
			os.Exit(1)
		}

	case "version":
		fmt.Printf("soundex %s\n", libVersion)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "soundex: unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// code applies the selected options to one word.
func code(w string, full, fold bool) string {
	if fold {
		w = soundex.Fold(w)
	}
	if full {
		return soundex.EncodeFull(w)
	}
	return soundex.Encode(w)
}

// readTokens collects whitespace-separated tokens from r.
func readTokens(r io.Reader) []string {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		fatal("read stdin: %v", err)
	}
	return words
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "soundex: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `soundex - phonetic code CLI

Usage:
  soundex encode [--full] [--fold] [word...]   Print the code for each word
  soundex equal [--full] [--fold] A B          Compare two words by code
  soundex version                              Print version info

With no words, encode reads whitespace-separated tokens from stdin.

Flags:
  --full   Keep the untruncated code instead of the 4-character form
  --fold   Strip diacritics before encoding (Müller -> Muller)`)
}
