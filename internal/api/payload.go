package api

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/nikmy/interviews/pkg/errors"
)

type createRequest struct {
	Date looseString `json:"date"`
	Time looseString `json:"time"`
}

// looseString accepts any JSON scalar and keeps its text form.
// Nulls and absent keys leave it empty, objects and arrays are rejected.
type looseString struct {
	value *string
}

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case 'n':
		s.value = nil
		return nil
	case '"':
		var str string
		err := json.Unmarshal(data, &str)
		if err != nil {
			return err
		}
		s.value = &str
		return nil
	case 't', 'f':
		var b bool
		err := json.Unmarshal(data, &b)
		if err != nil {
			return err
		}
		str := strconv.FormatBool(b)
		s.value = &str
		return nil
	case '{', '[':
		return errors.Failf("cast %s to string", data)
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.WrapFailf(err, "cast %s to string", data)
	}

	str := strconv.FormatFloat(f, 'f', -1, 64)
	s.value = &str
	return nil
}
