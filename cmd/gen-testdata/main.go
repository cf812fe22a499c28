// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// gen-testdata writes small sample RIM archives for manual inspection and
// for seeding test fixtures.
package main

import (
	"flag"
	"fmt"
	"os"

	rim "github.com/ProjectSynchro/PyKotor-sub000"
)

var outPath = flag.String("o", "test.rim", "path to write the sample archive to")

func main() {
	flag.Parse()

	a := rim.New()
	for _, r := range []struct {
		name string
		typ  uint32
		data string
	}{
		{"1", 10, "abc"},
		{"2", 10, "def"},
		{"3", 10, "ghi"},
	} {
		if err := a.Set(r.name, r.typ, []byte(r.data)); err != nil {
			fmt.Fprintf(os.Stderr, "set %q: %s\n", r.name, err)
			os.Exit(1)
		}
	}

	if err := rim.WriteFile(*outPath, a); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %s\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d resources to %s\n", a.Len(), *outPath)
}
