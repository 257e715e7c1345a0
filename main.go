package main

import (
	"github.com/ValentinKolb/pRDD/cmd"
)

func main() {
	cmd.Execute()
}
