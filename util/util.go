package util

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

func PrettyPrint(data ...interface{}) error {
	fmt.Println()
	byteData, err := json.MarshalIndent(data[len(data)-1], "", " ")
	if err != nil {
		return err
	}
	if len(data) == 1 {
		fmt.Print(data[:len(data)-1]...)
	} else {
		fmt.Println(data[:len(data)-1]...)
	}
	fmt.Println(string(byteData))
	fmt.Println()
	return nil
}

func SetResponse(data interface{}, status int, message string) map[string]interface{} {
	response := make(map[string]interface{})
	response["data"] = nil
	if data != nil {
		response["data"] = data
	}
	response["status"] = status
	response["message"] = message
	return response
}

func RecoverGoroutinePanic(errChan chan<- error) {
	if r := recover(); r != nil {
		// Handle the panic here
		fmt.Println("Recovered from go routine panic:", r)
		if errChan != nil {
			errChan <- errors.Errorf("error due to panic: %v", r)
		}
	}
}

func Recover() {
	if r := recover(); r != nil {
		// Handle the panic here
		fmt.Println("Recovered from panic:", r)
	}
}

// TruncateRunes shortens s to at most max runes, keeping multi-byte
// characters intact.
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
