package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that unmarshals from either a JSON number or a
// numeric string. The upstream data set stores product quantities as
// strings ("50"), so request bodies arrive in both shapes; everything is
// normalized to a real integer before it reaches storage.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("quantity %q is not numeric", s)
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("quantity %s is not an integer", string(data))
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the plain int value.
func (f FlexInt) Int() int {
	return int(f)
}
