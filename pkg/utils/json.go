package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa in com indentação. Aceita []byte já serializado.
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		buffer = raw
	} else {
		buffer, err = jsonAPI.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	}

	var out bytes.Buffer
	err = json.Indent(&out, buffer, "", "  ")
	if err != nil {
		fmt.Println(err)
	}

	return out.String()
}
