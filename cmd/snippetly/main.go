// Command snippetly runs the song snippet messaging service.
package main

import "github.com/snippetly/song-snippetly/internal/cli"

func main() {
	cli.Main()
}
