// colorcue names colours with two memorable words.
//
// A colour is encoded as a descriptor word carrying the hue and a scored
// word carrying saturation and luminosity, and decoded back the same way.
package main

import "github.com/jmylchreest/colorcue/internal/cli"

func main() {
	cli.Execute()
}
