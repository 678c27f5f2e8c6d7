// Command sqlshift is the CLI entry point.
package main

import "github.com/sqlshift-labs/sqlshift/internal/cli"

func main() {
	cli.Execute()
}
