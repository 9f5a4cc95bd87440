// mailsettings manages mailbox settings from the terminal
package main

import (
	"os"

	"mail-settings/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
