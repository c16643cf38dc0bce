// mockshape CLI - generate mock data from schemas
package main

import (
	"os"

	"github.com/getmockd/mockshape/pkg/cli"
)

func main() {
	os.Exit(cli.Main())
}
