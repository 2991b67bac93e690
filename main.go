package main

import (
	"time"

	"github.com/travel-record/backend-sub002/cmd"
	"github.com/travel-record/backend-sub002/util"
)

func main() {
	data := map[string]interface{}{
		"startTime": time.Now().Format("January 02, 2006 - 03:04:05 PM MST"),
		"message":   "Starting travel record backend server . . .",
		"repo":      "backend-sub002",
	}

	util.PrettyPrint(data)
	cmd.New().Execute()
}
