// Package testing moves the working directory to the module root on import,
// so tests resolve .env, logs/ and sqlite paths the same way the server does.
//
//	import _ "liyu1981.xyz/altitude-guard/pkg/testing"
package testing

import (
	"os"
	"path/filepath"
	"runtime"
)

func init() {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot locate pkg/testing source")
	}
	root := filepath.Join(filepath.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}
}
