/*
Package icns reads macOS ICNS icon containers: files that bundle an icon
family of bitmap and PNG/JPEG 2000 representations at multiple resolutions,
color depths and variant states (including nested families such as dark mode
variants), all stored as tagged, length-prefixed elements.

The package parses a whole container in a single linear pass into an
immutable element tree and decodes the legacy raw and run-length-encoded
bitmap formats itself; PNG and JPEG 2000 payloads are delegated to a
pluggable Decoder.

The package provides a command line interface for listing and extracting
icons. To check the supported commands type:

	$ icns --help

In case you wish to integrate the API in a self constructed environment here
is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/icns"
	)

	func main() {
		c, err := icns.ParseFile("app.icns")
		if err != nil {
			fmt.Printf("Error parsing the icon container: %s", err.Error())
			return
		}

		for _, e := range c.Elements() {
			fmt.Println(e.Tag, e.Info.Describe())
		}
	}
*/
package icns
