// Command gridrect decomposes occupancy grids into bounding rectangles.
//
//	gridrect decompose map.txt
//	gridrect components --conn 8 -o json map.yaml
//	gridrect bridge --from 0 --to 1 map.txt
//	cat map.txt | gridrect decompose -
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
