package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ImageList holds product image URLs, stored as a JSON array in a text column.
// A row with a NULL or unparsable value scans as an empty list so old data
// never breaks product reads.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ImageList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("imagelist: unsupported column type")
	}

	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		*l = ImageList{}
		return nil
	}
	*l = urls
	return nil
}
