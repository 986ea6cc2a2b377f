// Command pcbcheck validates pcb design files.
package main

import "github.com/db47h/pcb/cmd/pcbcheck/cmd"

func main() {
	cmd.Execute()
}
