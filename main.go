package main

import "github.com/daniazubel1/suptrack/cmd/suptrack"

func main() {
	suptrack.Execute()
}
