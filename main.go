package main

import (
	"github.com/gjutils/gjutil/cmd"
	_ "github.com/golang/mock/mockgen/model"
)

func main() {
	cmd.Execute()
}
