// Command fixedgen generates fixed-length array types.
//
//	fixedgen --package types --out fixed_gen.go --type SecretKey:byte:32 --type Limbs:uint32:10
//
// Without --out the generated source is written to stdout.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
